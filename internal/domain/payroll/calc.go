package payroll

const (
	// HRARate is the house-rent allowance applied to every basic salary.
	HRARate = 0.24
	// PFRate applies only at or above the deduction threshold.
	PFRate = 0.12
	// InsurancePremium is a flat deduction at or above the threshold.
	InsurancePremium = 1500.0
	// DeductionThreshold: below this basic salary (strict less-than) neither
	// PF nor insurance is deducted.
	DeductionThreshold = 10000.0
)

type Breakdown struct {
	Basic     float64
	HRA       float64
	PF        float64
	Insurance float64
	Net       float64
}

// Calculate produces the salary breakdown for a basic salary. Deterministic:
// the same input always yields the same breakdown.
func Calculate(basic float64) Breakdown {
	b := Breakdown{
		Basic: basic,
		HRA:   basic * HRARate,
	}
	if basic >= DeductionThreshold {
		b.PF = basic * PFRate
		b.Insurance = InsurancePremium
	}

	gross := basic + b.HRA
	net := gross - b.PF - b.Insurance
	if net < 0 {
		net = 0
	}
	b.Net = net
	return b
}
