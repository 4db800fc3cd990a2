package service

import "strings"

// AssistantGreeting opens every assistant conversation.
const AssistantGreeting = "Hello. I can guide you on complaint submission, tracking, and escalation."

type cannedReply struct {
	keywords []string
	reply    string
}

var cannedReplies = []cannedReply{
	{
		keywords: []string{"internet", "wifi"},
		reply:    "Choose Internet Connectivity, include building and location details, and set priority based on impact.",
	},
	{
		keywords: []string{"track", "status"},
		reply:    "Open the Tickets menu to see your complaint status and any remarks from department staff.",
	},
	{
		keywords: []string{"urgent", "high"},
		reply:    "For urgent issues, select High priority and describe safety or service impact in the complaint.",
	},
	{
		keywords: []string{"dorm", "maintenance"},
		reply:    "Dormitory complaints are routed to the Housing Office. Include block and room identifiers.",
	},
}

// AssistantReply returns the canned answer for the first keyword group that
// matches the lowercased input, or a generic prompt when nothing matches.
func AssistantReply(input string) string {
	lower := strings.ToLower(input)
	for _, c := range cannedReplies {
		for _, k := range c.keywords {
			if strings.Contains(lower, k) {
				return c.reply
			}
		}
	}
	return "Share the issue type, exact location, and urgency. I can help you pick category and priority."
}
