package internal

import (
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
)

type Address struct {
	Purok        string `json:"purok"`
	Street       string `json:"street"`
	Barangay     string `json:"barangay" gorm:"index"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Region       string `json:"region"`
	ZipCode      string `json:"zip_code"`
}

func (a Address) ToDomain() domain.Address {
	return domain.Address(a)
}

func FromAddress(value domain.Address) Address {
	return Address(value)
}

func nullableID(value domain.ID) *string {
	return utils.StringPtr(value.String())
}

func idValue(value *string) domain.ID {
	return domain.ID(utils.StringValue(value))
}
