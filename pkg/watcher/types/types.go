package types

type Watch struct {
	ID          string
	InfoURL     string
	GitSHA      string
	PlanKey     string
	BuildNumber string
}
