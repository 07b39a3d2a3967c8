package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	patientserrors "patientcleaner/internal/patients/errors"
	"patientcleaner/pkg/model"
)

// Decode reads a JSON array of raw patient records. Elements that are not JSON
// objects decode to nil records so the cleaner can reject them in place and
// record indexes keep matching the input. Anything but whitespace after the
// array is an error.
func Decode(r io.Reader) ([]model.RawPatient, error) {
	dec := json.NewDecoder(r)

	var document json.RawMessage
	if err := dec.Decode(&document); err != nil {
		return nil, fmt.Errorf("decode patient data: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, patientserrors.ErrTrailingData
	}

	document = bytes.TrimSpace(document)
	if len(document) == 0 || document[0] != '[' {
		return nil, patientserrors.ErrNotArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(document, &elements); err != nil {
		return nil, fmt.Errorf("decode patient data: %w", err)
	}

	records := make([]model.RawPatient, 0, len(elements))
	for _, element := range elements {
		records = append(records, decodeRecord(element))
	}
	return records, nil
}

func decodeRecord(element json.RawMessage) model.RawPatient {
	element = bytes.TrimSpace(element)
	if len(element) == 0 || element[0] != '{' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(element))
	dec.UseNumber()

	var record model.RawPatient
	if err := dec.Decode(&record); err != nil {
		return nil
	}
	return record
}
