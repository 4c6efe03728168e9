package binding

import (
	"fmt"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
)

var (
	// ErrSlotEmpty matches bindings submitted without a slot.
	ErrSlotEmpty = apperrors.New(apperrors.CodeBindingSlotEmpty, "binding slot is required")
	// ErrSlotInvalid matches slots outside the allowed token syntax.
	ErrSlotInvalid = apperrors.New(apperrors.CodeBindingSlotInvalid, "binding slot is invalid")
	// ErrNotFound matches lookups of slots with no stored binding.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "binding not found")
)

func slotInvalidError(slot string) error {
	return apperrors.WithMetadata(
		apperrors.CodeBindingSlotInvalid,
		fmt.Sprintf("binding slot %q is invalid", slot),
		map[string]string{"Slot": slot},
	)
}

func notFoundError(slot string, cause error) error {
	err := apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("no binding for slot %q", slot), cause)
	err.Metadata = map[string]string{"Resource": "Binding " + slot, "Slot": slot}
	return err
}
