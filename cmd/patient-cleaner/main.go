package main

import (
	"context"
	"io"
	"os"

	"patientcleaner/internal/patients/loader"
	"patientcleaner/internal/patients/reporter"
	"patientcleaner/internal/patients/service"
	"patientcleaner/internal/patients/validator"
	"patientcleaner/pkg/config"
	"patientcleaner/pkg/logger"
	"patientcleaner/pkg/model"
)

const serviceName = "patient-cleaner"

func main() {
	run(context.Background(), config.Default(), os.Stdout, os.Stderr)
}

// run loads, cleans and prints the configured input. It always completes:
// a missing or unreadable file is reported on out and cleaned as empty.
func run(ctx context.Context, cfg *config.Config, out, errOut io.Writer) []model.Patient {
	log := initLogger(errOut)

	records := loader.NewFileLoader(cfg.InputPath, out, log).Load(ctx)

	patientValidator := validator.NewPatientValidator(log, cfg.MinAge)
	cleaner := service.NewPatientCleaner(patientValidator, log)
	result := cleaner.CleanWithReport(records)

	if err := reporter.NewConsole(out).Report(ctx, result); err != nil {
		log.Error("Failed to print cleaned patients", "error", err)
	}
	return result.Patients
}

func initLogger(out io.Writer) *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Output:  out,
		Service: serviceName,
	})
}
