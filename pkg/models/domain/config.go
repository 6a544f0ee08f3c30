package domain

import "fmt"

// FranchiseProfile is one section of the franchise profiles file.
type FranchiseProfile struct {
	Name       string // section name
	Number     string // 10456
	Department string // Springfield North
	Owner      string
}

func (p FranchiseProfile) Info() FranchiseInfo {
	return FranchiseInfo{
		Number:     p.Number,
		Department: p.Department,
		Owner:      p.Owner,
	}
}

func (p FranchiseProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Number)
}
