package icons

import (
	"fmt"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
)

var (
	// ErrUnknownIcon matches lookups of identifiers the registry does not hold.
	ErrUnknownIcon = apperrors.New(apperrors.CodeIconUnknown, "unknown icon")
	// ErrMissingLabel matches non-decorative renders that carry no label.
	ErrMissingLabel = apperrors.New(apperrors.CodeIconMissingLabel, "icon label is required")
)

func unknownIconError(id ID) error {
	return apperrors.WithMetadata(
		apperrors.CodeIconUnknown,
		fmt.Sprintf("unknown icon %q", string(id)),
		map[string]string{"IconID": string(id)},
	)
}

func missingLabelError(id ID) error {
	return apperrors.WithMetadata(
		apperrors.CodeIconMissingLabel,
		fmt.Sprintf("icon %q is not decorative and has no label", string(id)),
		map[string]string{"IconID": string(id)},
	)
}

func invalidDefinitionError(id ID, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeIconInvalidDefinition,
		fmt.Sprintf("invalid icon definition %q: %s", string(id), reason),
		map[string]string{"IconID": string(id), "Reason": reason},
	)
}

func duplicateIDError(id ID) error {
	return apperrors.WithMetadata(
		apperrors.CodeIconDuplicateID,
		fmt.Sprintf("duplicate icon id %q", string(id)),
		map[string]string{"IconID": string(id)},
	)
}
