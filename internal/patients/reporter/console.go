package reporter

import (
	"context"
	"fmt"
	"io"
	"patientcleaner/internal/patients/service"
)

const (
	ConsoleHeader    = "Cleaned Patient Data:"
	ConsoleNoRecords = "No valid patient records found."
)

type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Report(_ context.Context, result *service.Result) error {
	if result == nil || len(result.Patients) == 0 {
		_, err := fmt.Fprintln(c.out, ConsoleNoRecords)
		return err
	}

	if _, err := fmt.Fprintln(c.out, ConsoleHeader); err != nil {
		return err
	}
	for _, p := range result.Patients {
		if _, err := fmt.Fprintf(c.out, "Name: %s, Age: %d, Diagnosis: %s\n", p.Name, p.Age, p.Diagnosis); err != nil {
			return err
		}
	}
	return nil
}
