package powerdns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTXTContent(t *testing.T) {
	tests := []struct {
		data    string
		content string
	}{
		{data: "v=spf1 -all", content: `"v=spf1 -all"`},
		{data: `4"5"6`, content: `"4\"5\"6"`},
		{data: `back\slash`, content: `"back\\slash"`},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			assert.Equal(t, tt.content, toContent("TXT", tt.data))
			assert.Equal(t, tt.data, fromContent("TXT", tt.content))
		})
	}
}

func TestTXTContent_MultiString(t *testing.T) {
	assert.Equal(t, "abcdef", fromContent("TXT", `"abc" "def"`))
	assert.Equal(t, `"already quoted"`, toContent("TXT", `"already quoted"`))
}

func TestContent_OtherTypes(t *testing.T) {
	assert.Equal(t, "10 mail.example.org.", toContent("MX", "10 mail.example.org."))
	assert.Equal(t, `"x"`, fromContent("CAA", `"x"`))
}

func TestTTLSeconds(t *testing.T) {
	assert.Equal(t, uint32(3600), ttlSeconds(0))
	assert.Equal(t, uint32(300), ttlSeconds(5*time.Minute))
}
