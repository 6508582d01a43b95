package common

type Module string

const (
	ModuleSilentPayments Module = "silentpayments"
)

func (m Module) String() string {
	return string(m)
}
