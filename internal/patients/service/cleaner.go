package service

import (
	"fmt"
	patientserrors "patientcleaner/internal/patients/errors"
	"patientcleaner/internal/patients/validator"
	"patientcleaner/pkg/logger"
	"patientcleaner/pkg/model"
	"patientcleaner/pkg/sanitizer"

	"github.com/google/uuid"
)

type Rejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Report tells apart the ways a raw record can be left out of the output.
type Report struct {
	RunID      string      `json:"run_id"`
	Total      int         `json:"total"`
	Accepted   int         `json:"accepted"`
	Rejected   int         `json:"rejected"`
	Underage   int         `json:"underage"`
	Duplicates int         `json:"duplicates"`
	Rejections []Rejection `json:"rejections"`
}

type Result struct {
	Patients []model.Patient `json:"patients"`
	Report   Report          `json:"report"`
}

type PatientCleaner interface {
	Clean(records []model.RawPatient) []model.Patient
	CleanWithReport(records []model.RawPatient) *Result
}

type patientCleaner struct {
	validator *validator.PatientValidator
	log       *logger.Logger
	minAge    int
}

// NewPatientCleaner drops records below the validator's minimum age.
func NewPatientCleaner(
	validator *validator.PatientValidator,
	log *logger.Logger,
) PatientCleaner {
	return &patientCleaner{
		validator: validator,
		log:       log,
		minAge:    validator.MinAge(),
	}
}

// Clean normalizes, filters and deduplicates records. It never fails: records
// that cannot be cleaned are left out and the result is never nil.
func (c *patientCleaner) Clean(records []model.RawPatient) []model.Patient {
	return c.CleanWithReport(records).Patients
}

func (c *patientCleaner) CleanWithReport(records []model.RawPatient) *Result {
	result := &Result{
		Patients: make([]model.Patient, 0, len(records)),
		Report: Report{
			RunID:      uuid.NewString(),
			Total:      len(records),
			Rejections: []Rejection{},
		},
	}
	log := c.log.With("run_id", result.Report.RunID)
	seen := make(map[model.IdentityKey]struct{}, len(records))

	for i, raw := range records {
		name, age, err := extractNameAndAge(raw)
		if err != nil {
			c.reject(log, &result.Report, i, err)
			continue
		}

		if age < c.minAge {
			result.Report.Underage++
			log.Debug("Patient record below minimum age", "index", i, "age", age, "min_age", c.minAge)
			continue
		}

		patient, err := extractPassthrough(raw, name, age)
		if err != nil {
			c.reject(log, &result.Report, i, err)
			continue
		}

		if err := c.validator.Validate(&patient); err != nil {
			c.reject(log, &result.Report, i, err)
			continue
		}

		key := patient.Key()
		if _, ok := seen[key]; ok {
			result.Report.Duplicates++
			log.Debug("Duplicate patient record dropped", "index", i, "name", patient.Name)
			continue
		}
		seen[key] = struct{}{}

		result.Patients = append(result.Patients, patient)
	}

	result.Report.Accepted = len(result.Patients)

	log.Info("Patient records cleaned",
		"total", result.Report.Total,
		"accepted", result.Report.Accepted,
		"rejected", result.Report.Rejected,
		"underage", result.Report.Underage,
		"duplicates", result.Report.Duplicates,
	)

	return result
}

func (c *patientCleaner) reject(log *logger.Logger, report *Report, index int, err error) {
	report.Rejected++
	report.Rejections = append(report.Rejections, Rejection{
		Index:  index,
		Reason: err.Error(),
	})
	log.Debug("Malformed patient record skipped", "index", index, "error", err)
}

func extractNameAndAge(raw model.RawPatient) (string, int, error) {
	value, ok := raw[model.FieldName]
	if !ok || value == nil {
		return "", 0, fmt.Errorf("%s: %w", model.FieldName, patientserrors.ErrMissingField)
	}
	text, ok := value.(string)
	if !ok {
		return "", 0, fmt.Errorf("%s: %w", model.FieldName, patientserrors.ErrInvalidName)
	}
	name := sanitizer.NormalizeName(text)

	value, ok = raw[model.FieldAge]
	if !ok || value == nil {
		return "", 0, fmt.Errorf("%s: %w", model.FieldAge, patientserrors.ErrMissingField)
	}
	age, err := sanitizer.CoerceInt(value)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w: %w", model.FieldAge, patientserrors.ErrInvalidAge, err)
	}

	return name, age, nil
}

func extractPassthrough(raw model.RawPatient, name string, age int) (model.Patient, error) {
	gender, err := textField(raw, model.FieldGender)
	if err != nil {
		return model.Patient{}, err
	}
	diagnosis, err := textField(raw, model.FieldDiagnosis)
	if err != nil {
		return model.Patient{}, err
	}

	return model.Patient{
		Name:      name,
		Age:       age,
		Gender:    gender,
		Diagnosis: diagnosis,
	}, nil
}

func textField(raw model.RawPatient, field string) (string, error) {
	value, ok := raw[field]
	if !ok || value == nil {
		return "", fmt.Errorf("%s: %w", field, patientserrors.ErrMissingField)
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w", field, patientserrors.ErrInvalidField)
	}
	return text, nil
}
