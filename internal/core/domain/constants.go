package domain

// Application-wide constants served to the frontend via the config endpoint.
const (
	// AnnualVacationDays is the vacation allowance per employee per year.
	AnnualVacationDays = 26

	// MaxAbsenceReasonLength caps the absence request reason.
	MaxAbsenceReasonLength = 500

	// MaxAdvanceBookingYears caps how far ahead an absence may start.
	MaxAdvanceBookingYears = 1
)

// AppConfig is the shape of the public configuration payload.
type AppConfig struct {
	AnnualVacationDays     int `json:"annualVacationDays"`
	MaxAbsenceReasonLength int `json:"maxAbsenceReasonLength"`
	MaxAdvanceBookingYears int `json:"maxAdvanceBookingYears"`
}

// CurrentAppConfig returns the constants as a payload.
func CurrentAppConfig() AppConfig {
	return AppConfig{
		AnnualVacationDays:     AnnualVacationDays,
		MaxAbsenceReasonLength: MaxAbsenceReasonLength,
		MaxAdvanceBookingYears: MaxAdvanceBookingYears,
	}
}
