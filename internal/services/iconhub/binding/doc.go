// Package binding assigns icons to named UI slots.
//
// Slots and icon identifiers arrive from configuration files, HTTP requests,
// and agent tool calls, so every write is normalized and checked against the
// icon registry before it reaches storage. A binding is only stored when it
// would render: non-decorative bindings must carry a label.
package binding
