package types

// AWSProfile is a profile entry from ~/.aws/credentials or ~/.aws/config.
type AWSProfile struct {
	Name   string
	Region string
	Source string // "credentials" or "config"
}
