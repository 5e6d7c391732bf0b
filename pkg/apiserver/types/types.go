package types

import "time"

type APIServerParams struct {
	Port string

	BambooURL      string
	BambooUsername string
	BambooPassword string

	MaxRetries    int
	RetryInterval time.Duration
}
