package internal

import "profiling-server/internal/shared_kernel/domain"

type Address struct {
	Purok        string `json:"purok"`
	Street       string `json:"street"`
	Barangay     string `json:"barangay"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Region       string `json:"region"`
	ZipCode      string `json:"zip_code" validate:"omitempty,numeric,len=4"`
	Line         string `json:"line,omitempty"`
}

func (a Address) ToDomain() domain.Address {
	return domain.Address{
		Purok:        a.Purok,
		Street:       a.Street,
		Barangay:     a.Barangay,
		Municipality: a.Municipality,
		Province:     a.Province,
		Region:       a.Region,
		ZipCode:      a.ZipCode,
	}
}

func ToAddress(value domain.Address) Address {
	return Address{
		Purok:        value.Purok,
		Street:       value.Street,
		Barangay:     value.Barangay,
		Municipality: value.Municipality,
		Province:     value.Province,
		Region:       value.Region,
		ZipCode:      value.ZipCode,
		Line:         value.Line(),
	}
}
