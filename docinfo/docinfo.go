// Package docinfo defines the documentation metadata record attached to
// decoded nodes and its CBOR codec. The script decoder treats doc blobs as
// opaque bytes; this package is the default interpretation of them.
package docinfo

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Info is the documentation metadata of one node: the handful of doc-comment
// facts that survive into the exchange format.
type Info struct {
	License      bool     `cbor:"1,keyasint,omitempty"` // comment carries license text
	Description  string   `cbor:"2,keyasint,omitempty"`
	Suppressions []string `cbor:"3,keyasint,omitempty"` // suppressed diagnostic groups
	Authors      []string `cbor:"4,keyasint,omitempty"`
	SeeAlso      []string `cbor:"5,keyasint,omitempty"`
	Version      string   `cbor:"6,keyasint,omitempty"`
}

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("docinfo: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Marshal serializes an Info to CBOR bytes.
func Marshal(info *Info) ([]byte, error) {
	return cborEncMode.Marshal(info)
}

// Unmarshal deserializes an Info from CBOR bytes.
func Unmarshal(data []byte) (*Info, error) {
	var info Info
	if err := cbor.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("docinfo: unmarshal info: %w", err)
	}
	return &info, nil
}

// Codec is the default doc decoder plugged into the script decoder. The zero
// value is ready to use.
type Codec struct{}

// DecodeDoc implements the decoder's DocDecoder interface.
func (Codec) DecodeDoc(blob []byte) (*Info, error) {
	return Unmarshal(blob)
}
