// Smoke test for the AI interview API flow against a running instance.
// Usage: go run ./cmd/probe -token <jwt> [-base http://localhost:3000/api]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

var (
	baseURL = flag.String("base", "http://localhost:3000/api", "API base URL")
	token   = flag.String("token", "", "JWT bearer token of the test user")
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, *baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+*token)

	client := &http.Client{} // generation can take a while, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

func main() {
	flag.Parse()
	if *token == "" {
		color.Red("A -token is required")
		os.Exit(1)
	}

	color.Cyan("Starting AI Interview API Probe\n")

	// 1. Start a session
	color.Yellow("\n1. Start Interview")
	resp, body, err := sendRequest("POST", "/ai-interview/v1/start", map[string]interface{}{
		"problem":             "Two Sum",
		"difficulty":          "easy",
		"problem_description": "Given an array of integers, return indices of the two numbers that add up to a target.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	startResp := decode(body)
	prettyPrint(startResp)

	var sessionID string
	if data, ok := startResp["data"].(map[string]interface{}); ok {
		if session, ok := data["session"].(map[string]interface{}); ok {
			sessionID, _ = session["id"].(string)
		}
	}
	if sessionID == "" {
		color.Red("No session id in response, aborting")
		os.Exit(1)
	}

	// 2. Send a turn
	color.Yellow("\n2. Send Message")
	resp, body, err = sendRequest("POST", "/ai-interview/v1/message", map[string]interface{}{
		"session_id":   sessionID,
		"message":      "I would use a hash map to store seen values and their indices.",
		"current_code": "function twoSum(nums, target) {\n  const seen = new Map();\n}",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 3. End the session
	color.Yellow("\n3. End Interview")
	resp, body, err = sendRequest("POST", "/ai-interview/v1/end", map[string]interface{}{
		"session_id": sessionID,
		"final_code": "function twoSum(nums, target) { /* ... */ }",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 4. Re-fetch, should come from the completed-session cache
	color.Yellow("\n4. Get Session")
	resp, body, err = sendRequest("GET", "/ai-interview/v1/"+sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 5. Stats should reflect the completion shortly after
	color.Yellow("\n5. Practice Stats")
	resp, body, err = sendRequest("GET", "/stats/v1/me", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 6. Code assist round
	color.Yellow("\n6. Code Review")
	resp, body, err = sendRequest("POST", "/ai/v1/review", map[string]interface{}{
		"code":          "function twoSum(nums, target) {\n  const seen = new Map();\n  for (let i = 0; i < nums.length; i++) {\n    if (seen.has(target - nums[i])) return [seen.get(target - nums[i]), i];\n    seen.set(nums[i], i);\n  }\n}",
		"language":      "javascript",
		"problem_title": "Two Sum",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Yellow("\n7. Hint")
	resp, body, err = sendRequest("POST", "/ai/v1/hint", map[string]interface{}{
		"code":          "function twoSum(nums, target) {\n}",
		"language":      "javascript",
		"problem_title": "Two Sum",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\nProbe complete")
}
