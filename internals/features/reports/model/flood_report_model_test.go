package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyWaterLevel(t *testing.T) {
	tests := []struct {
		name string
		cm   int
		want AlertLevel
	}{
		{"nol", 0, AlertAman},
		{"tepat 50 masih aman", 50, AlertAman},
		{"51 mulai waspada", 51, AlertWaspada},
		{"tepat 150 masih waspada", 150, AlertWaspada},
		{"151 bahaya", 151, AlertBahaya},
		{"maksimum input", 300, AlertBahaya},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWaterLevel(tt.cm))
		})
	}
}
