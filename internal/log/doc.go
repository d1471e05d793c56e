// Package log provides logging with automatic redaction of patient data,
// built on top of the standard slog package.
//
// Reports are generated from EHR exports, so log attributes can easily carry
// protected health information. The RedactingHandler masks:
//   - Attributes whose key names a patient identifier or clinical free text
//     (patient_id, symptoms, doctor_observations, name, dob, ...)
//   - String values that look like direct identifiers (SSNs, e-mail
//     addresses, phone numbers)
//
// Even in verbose mode, masked values never reach the log output.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("record annotated",
//	    "patient_id", "P1",     // Will be masked
//	    "icd10_code", "J45.909",
//	)
//	slog.SetDefault(logger)
package log
