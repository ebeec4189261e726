package services

import (
	"fmt"
	"strings"

	"yatra/internal/models/request_models"
)

// Prompt construction is pure string assembly: two calls with the same input
// produce byte-identical prompts. The generation prompt instructs the
// provider to answer with exactly the two fields the response parser expects.

const planningConsiderations = `Consider Indian travel preferences:
- Indian food and vegetarian options
- Visa requirements from India
- Budget in Indian Rupees
- Cultural and spiritual sites
- Shopping and markets
- Family-friendly activities
- Weather preferences
- Flight connectivity from India
- Local Indian communities
- Festivals and events
- Photography spots
- Budget-friendly options`

func BuildItineraryPrompt(req request_models.ItineraryRequest) string {
	mobility := req.Mobility
	if mobility == "" {
		mobility = "No constraints"
	}
	transport := req.Transport
	if transport == "" {
		transport = "Any"
	}

	return fmt.Sprintf(`You are an expert travel planner specializing in Indian travelers. Create a detailed, day-by-day itinerary for the following trip:

Destination: %s
Dates: %s to %s
Budget: %s
Travelers: %d
Interests: %s
Pace: %s
Mobility: %s
Transport: %s

Format your response as a JSON object with these fields:
1. "content": A detailed markdown-formatted itinerary with day-by-day activities
2. "reasoning": Your planning considerations and recommendations

%s

Ensure the response is in valid JSON format.`,
		req.Destination,
		req.StartDate, req.EndDate,
		req.Budget,
		req.Travelers,
		strings.Join(req.Interests, ", "),
		req.Pace,
		mobility,
		transport,
		planningConsiderations,
	)
}

func BuildRefinementSystemPrompt() string {
	return `You are an expert travel planner. Refine the existing itinerary based on the user's specific instruction.
Maintain the overall structure but make the requested changes. Format your response as JSON with two fields:
- content: The refined itinerary in Markdown format
- reasoning: A concise explanation of the changes made and why

Consider:
- The original itinerary context
- The specific refinement request
- Maintaining logical flow and timing
- Budget and practical constraints
- User preferences from the original request`
}

func BuildRefinementUserPrompt(instruction string, currentContent string) string {
	return fmt.Sprintf(`Please refine this itinerary based on my request: %q

Original itinerary:
%s

Please make the requested changes while maintaining the overall quality and structure of the itinerary.`,
		instruction, currentContent)
}
