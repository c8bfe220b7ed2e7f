package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PatchableFields lists the JSON keys an inventory update may carry
var PatchableFields = []string{
	"current_stock_lb",
	"is_seasoned",
	"location",
	"meat_part_id",
	"seasoning_package_id",
}

// ParsePatch decodes an update body into a Patch. Keys outside PatchableFields
// are rejected, is_active included. A null seasoning_package_id clears it.
func ParsePatch(body []byte) (inventory.Patch, error) {
	var patch inventory.Patch

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return patch, shared.NewInvalidInputError("Request body must be a JSON object")
	}
	if len(fields) == 0 {
		return patch, shared.NewInvalidInputError("No fields to update")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := fields[key]
		isNull := bytes.Equal(bytes.TrimSpace(raw), []byte("null"))

		switch key {
		case "current_stock_lb":
			var v decimal.Decimal
			if isNull || json.Unmarshal(raw, &v) != nil {
				return patch, invalidField(key, "a number")
			}
			patch.CurrentStockLb = &v
		case "is_seasoned":
			var v bool
			if isNull || json.Unmarshal(raw, &v) != nil {
				return patch, invalidField(key, "a boolean")
			}
			patch.IsSeasoned = &v
		case "location":
			var v string
			if isNull || json.Unmarshal(raw, &v) != nil {
				return patch, invalidField(key, "a string")
			}
			patch.Location = &v
		case "meat_part_id":
			var v uint
			if isNull || json.Unmarshal(raw, &v) != nil {
				return patch, invalidField(key, "a positive integer")
			}
			patch.MeatPartID = &v
		case "seasoning_package_id":
			if isNull {
				patch.ClearSeasoningPackage = true
				continue
			}
			var v uint
			if json.Unmarshal(raw, &v) != nil {
				return patch, invalidField(key, "a positive integer or null")
			}
			patch.SeasoningPackageID = &v
		case "is_active":
			return patch, shared.NewInvalidInputError("is_active cannot be updated; use delete or restore")
		default:
			return patch, shared.NewInvalidInputError(fmt.Sprintf("Field %q cannot be updated", key))
		}
	}
	return patch, nil
}

func invalidField(key, want string) error {
	return shared.NewInvalidInputError(fmt.Sprintf("%s must be %s", key, want))
}
