package nbody_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNbody(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Nbody Suite")
}
