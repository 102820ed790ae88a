package serialize

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// recEncMode is the CBOR encoder mode for accessory records.
// Deterministic encoding so identical records produce identical bytes.
var recEncMode cbor.EncMode

// recDecMode is the CBOR decoder mode for accessory records.
var recDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	recEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create record CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    reflect.TypeOf(map[string]any(nil)),
	}
	recDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create record CBOR decoder mode: %v", err))
	}
}

// Encode encodes an accessory record to compact CBOR bytes for transfer
// across a process boundary.
func Encode(rec *AccessoryRecord) ([]byte, error) {
	return recEncMode.Marshal(rec)
}

// Decode decodes CBOR bytes into an accessory record.
func Decode(data []byte) (*AccessoryRecord, error) {
	rec := &AccessoryRecord{}
	if err := recDecMode.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode accessory record: %w", err)
	}
	return rec, nil
}
