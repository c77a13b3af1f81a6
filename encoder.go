package koyomi

import (
	"bytes"
	"io/ioutil"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

//The charset encoding is all done in this file so you could use a different encoder

//Encoder interface as passed to the NameBytes methods
type Encoder interface {
	Encode(in []byte) ([]byte, error)
}

//This encoder translates UTF8 table strings to Shift-JIS for legacy display consumers
type ShiftJISEncoder struct{}

func (e *ShiftJISEncoder) Encode(in []byte) ([]byte, error) {
	r := transform.NewReader(bytes.NewReader(in), japanese.ShiftJIS.NewEncoder())
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return data, nil
}

//This encoder assumes your consumer takes UTF8 so it does nothing
type UTF8Encoder struct{}

func (e *UTF8Encoder) Encode(in []byte) ([]byte, error) {
	return in, nil
}

//NameBytes returns the phase name in the charset produced by enc
func (p MoonPhase) NameBytes(enc Encoder) ([]byte, error) {
	return enc.Encode([]byte(p.Name))
}

//NameBytes returns the cycle day name in the charset produced by enc
func (r RokuyoDay) NameBytes(enc Encoder) ([]byte, error) {
	return enc.Encode([]byte(r.Name))
}
