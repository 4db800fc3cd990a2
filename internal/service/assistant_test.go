package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantReply(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"How can I report internet issues?", "Internet Connectivity"},
		{"The WIFI in my dorm block keeps dropping", "Internet Connectivity"}, // first matching group wins
		{"How do I track my complaint?", "Tickets menu"},
		{"what is the STATUS of TKT-1001", "Tickets menu"},
		{"this is urgent", "High priority"},
		{"my dorm door is broken", "Housing Office"},
		{"hello there", "Share the issue type"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply := AssistantReply(tt.input)
			assert.True(t, strings.Contains(reply, tt.want),
				"reply %q should mention %q", reply, tt.want)
		})
	}
}
