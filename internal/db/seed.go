package db

// Fixture is a sample breach used to populate development stores.
type Fixture struct {
	Location   string
	BreachType string
	Impact     string
}

// Fixtures returns the development fixtures in insertion order.
// They exercise mixed case and multi-word values so that search can be
// tried against something realistic.
func Fixtures() []Fixture {
	return []Fixture{
		{"New York", "Phishing", "Low"},
		{"Boston", "Ransomware", "High"},
		{"San Francisco", "Credential Stuffing", "Medium"},
		{"London", "Insider Threat", "High"},
		{"Berlin", "SQL Injection", "Critical"},
		{"Tokyo", "Misconfigured Bucket", "Medium"},
		{"São Paulo", "Phishing", "Medium"},
		{"Sydney", "Lost Laptop", "Low"},
	}
}
