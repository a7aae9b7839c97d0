package waiter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeak(t *testing.T) {
	tests := []struct {
		name    string
		command func(out *bytes.Buffer) Waiter
		want    string
	}{
		{
			name:    "order",
			command: func(out *bytes.Buffer) Waiter { return NewOrderCommand(out, "X") },
			want:    "Waiter: X\n",
		},
		{
			name:    "taxi",
			command: func(out *bytes.Buffer) Waiter { return NewTaxiCommand(out, "Taxi is driving to client") },
			want:    "Taxi: Taxi is driving to client\n",
		},
		{
			name: "delegating to cooker",
			command: func(out *bytes.Buffer) Waiter {
				return NewDelegatingCommand(out, NewCooker(out), "Make fish", "Make meat")
			},
			want: "Waiter handed the order to cooker\n" +
				"Cooker: Working on (Make fish.)\n" +
				"Cooker: Also working on (Make meat.)\n",
		},
		{
			name:    "empty payload",
			command: func(out *bytes.Buffer) Waiter { return NewOrderCommand(out, "") },
			want:    "Waiter: \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			tt.command(out).Speak()
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSpeak_Idempotent(t *testing.T) {
	out := &bytes.Buffer{}
	command := NewDelegatingCommand(out, NewCooker(out), "Make fish", "Make meat")

	command.Speak()
	first := out.String()
	out.Reset()
	command.Speak()

	assert.Equal(t, first, out.String())
}

func TestCooker(t *testing.T) {
	out := &bytes.Buffer{}
	cooker := NewCooker(out)

	cooker.CookDish("soup")
	cooker.CookOther("salad")

	assert.Equal(t, "Cooker: Working on (soup.)\nCooker: Also working on (salad.)\n", out.String())
}
