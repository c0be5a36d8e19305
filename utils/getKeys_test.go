package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	biff.AssertEqual(GetKeys(map[string]int{"b": 2, "c": 3, "a": 1}), []string{"a", "b", "c"})
	biff.AssertEqual(GetKeys(map[string]int{}), []string{})
}
