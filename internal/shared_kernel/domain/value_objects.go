package domain

type ID string
type Version int

func (vo ID) String() string {
	return string(vo)
}

func (vo ID) IsEmpty() bool {
	return vo == ""
}

type Name string
type DisplayName string
type Description string
