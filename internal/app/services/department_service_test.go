package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDepartmentCode(t *testing.T) {
	valid := []string{"CS", "ECE", "IT2", " CS "}
	for _, code := range valid {
		assert.True(t, isValidDepartmentCode(code), "code %q should be valid", code)
	}

	invalid := []string{"", "   ", "cs", "C-S", "C S", "CS!"}
	for _, code := range invalid {
		assert.False(t, isValidDepartmentCode(code), "code %q should be invalid", code)
	}
}
