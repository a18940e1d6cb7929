package types

// VPC represents an AWS VPC and owns the subnets inside it.
type VPC struct {
	ID      string
	Name    string
	CIDR    string
	Subnets map[string]*Subnet
}

// Subnet represents a VPC subnet. Instances is populated once during
// grouping and read-only afterwards.
type Subnet struct {
	ID        string
	Name      string
	VPCID     string
	AZ        string
	CIDR      string
	Instances []Instance
}
