// pkg/utils/ai_response.go
package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Topic - หัวข้อสนทนาที่ได้จาก model
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ค่า default เมื่อ parse คำตอบของ model ไม่ได้เลย
// ผู้เรียกต้องไม่ได้ list ว่างเพียงเพราะ parse ไม่ผ่าน (ต่างจาก provider ล่มซึ่งเป็น error จริง)
var (
	DefaultTopics = []Topic{
		{Title: "Recent life updates", Description: "Catch up on what you have both been up to lately"},
		{Title: "Food discoveries", Description: "Share favorite places to eat or things you cooked"},
		{Title: "Weekend plans", Description: "Talk about what you want to do this weekend"},
	}

	DefaultTags = []string{"keeping notes", "everyday life", "random thoughts"}
)

var (
	fenceOpenRe  = regexp.MustCompile("^```[a-zA-Z]*\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```$")
	topicsKeyRe  = regexp.MustCompile(`"topics"\s*:\s*\[`)
	tagsKeyRe    = regexp.MustCompile(`"tags"\s*:\s*\[`)
)

// SanitizeModelOutput ตัด BOM และ Markdown code fence ที่ model ชอบพันรอบ JSON
func SanitizeModelOutput(raw string) string {
	s := strings.TrimPrefix(raw, "\uFEFF")
	s = strings.TrimSpace(s)
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractArrayAfter หา JSON array ที่ตามหลังตำแหน่ง start (index ของ '[')
// นับความลึกของ bracket เพื่อรองรับ object ซ้อนใน array
func extractArrayAfter(s string, start int) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}

// extractKeyedArray หา array ที่อยู่หลัง key ที่กำหนด เช่น "topics": [...]
func extractKeyedArray(s string, keyRe *regexp.Regexp) (string, bool) {
	loc := keyRe.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	// loc[1]-1 คือ index ของ '[' เพราะ pattern ลงท้ายด้วย \[
	return extractArrayAfter(s, loc[1]-1)
}

// extractBareArray หา array แรกสุดในข้อความ
func extractBareArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}
	return extractArrayAfter(s, start)
}

// normalizeTopics แปลง element ที่อาจเป็น string หรือ object ให้เป็น Topic
func normalizeTopics(items []interface{}, max int) []Topic {
	topics := make([]Topic, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				topics = append(topics, Topic{Title: v})
			}
		case map[string]interface{}:
			topic := Topic{}
			for _, key := range []string{"title", "topic", "name"} {
				if s, ok := v[key].(string); ok && s != "" {
					topic.Title = s
					break
				}
			}
			for _, key := range []string{"description", "detail", "reason"} {
				if s, ok := v[key].(string); ok && s != "" {
					topic.Description = s
					break
				}
			}
			if topic.Title != "" {
				topics = append(topics, topic)
			}
		}

		if len(topics) >= max {
			break
		}
	}
	return topics
}

// parseTopicsArray แปลง JSON array string เป็น []Topic
func parseTopicsArray(arrayJSON string, max int) ([]Topic, bool) {
	var items []interface{}
	if err := json.Unmarshal([]byte(arrayJSON), &items); err != nil {
		return nil, false
	}

	topics := normalizeTopics(items, max)
	if len(topics) == 0 {
		return nil, false
	}
	return topics, true
}

// ParseTopics แปลงข้อความตอบกลับของ model เป็นรายการหัวข้อ แบบ layered fallback:
// 1) strict JSON object {"topics": [...]} หรือ bare array
// 2) regex หา "topics": [...] หรือ array แรกในข้อความ (กรณี JSON ฝังอยู่ใน prose)
// 3) default topics - ไม่คืน list ว่างและไม่ throw เพราะ parse ไม่ผ่าน
func ParseTopics(raw string, max int) []Topic {
	if max <= 0 {
		max = len(DefaultTopics)
	}

	s := SanitizeModelOutput(raw)

	// ชั้นที่ 1: strict JSON
	var wrapper struct {
		Topics []interface{} `json:"topics"`
	}
	if err := json.Unmarshal([]byte(s), &wrapper); err == nil && len(wrapper.Topics) > 0 {
		if topics := normalizeTopics(wrapper.Topics, max); len(topics) > 0 {
			return topics
		}
	}
	if topics, ok := parseTopicsArray(s, max); ok {
		return topics
	}

	// ชั้นที่ 2: regex/scan หา array ที่ฝังอยู่ในข้อความ
	if arrayJSON, ok := extractKeyedArray(s, topicsKeyRe); ok {
		if topics, ok := parseTopicsArray(arrayJSON, max); ok {
			return topics
		}
	}
	if arrayJSON, ok := extractBareArray(s); ok {
		if topics, ok := parseTopicsArray(arrayJSON, max); ok {
			return topics
		}
	}

	// ชั้นที่ 3: default
	if max < len(DefaultTopics) {
		return DefaultTopics[:max]
	}
	return DefaultTopics
}

// normalizeTags เก็บเฉพาะ string ไม่ว่าง และตัดตามจำนวนสูงสุด
func normalizeTags(items []interface{}, max int) []string {
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		tags = append(tags, strings.TrimSpace(s))
		if len(tags) >= max {
			break
		}
	}
	return tags
}

func parseTagsArray(arrayJSON string, max int) ([]string, bool) {
	var items []interface{}
	if err := json.Unmarshal([]byte(arrayJSON), &items); err != nil {
		return nil, false
	}

	tags := normalizeTags(items, max)
	if len(tags) == 0 {
		return nil, false
	}
	return tags, true
}

// ParseTags แปลงข้อความตอบกลับของ model เป็นรายการ tag สั้นๆ
// ใช้ fallback chain เดียวกับ ParseTopics
func ParseTags(raw string, max int) []string {
	if max <= 0 {
		max = len(DefaultTags)
	}

	s := SanitizeModelOutput(raw)

	// ชั้นที่ 1: strict JSON
	var wrapper struct {
		Tags []interface{} `json:"tags"`
	}
	if err := json.Unmarshal([]byte(s), &wrapper); err == nil && len(wrapper.Tags) > 0 {
		if tags := normalizeTags(wrapper.Tags, max); len(tags) > 0 {
			return tags
		}
	}
	if tags, ok := parseTagsArray(s, max); ok {
		return tags
	}

	// ชั้นที่ 2: regex/scan
	if arrayJSON, ok := extractKeyedArray(s, tagsKeyRe); ok {
		if tags, ok := parseTagsArray(arrayJSON, max); ok {
			return tags
		}
	}
	if arrayJSON, ok := extractBareArray(s); ok {
		if tags, ok := parseTagsArray(arrayJSON, max); ok {
			return tags
		}
	}

	// ชั้นที่ 3: default
	if max < len(DefaultTags) {
		return DefaultTags[:max]
	}
	return DefaultTags
}
