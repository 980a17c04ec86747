package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mockserver is an OpenAI-compatible completion backend for local development
// and manual testing of the gateway without a running Ollama.

type chatRequest struct {
	Model    string `json:"model"`
	Stream   bool   `json:"stream"`
	Messages []struct {
		Role    string      `json:"role"`
		Content interface{} `json:"content"`
	} `json:"messages"`
}

func main() {
	port := flag.String("port", "11434", "Port to run the mock backend on")
	reply := flag.String("reply", "This is a canned reply from the mock backend", "Text returned for every prompt")
	flag.Parse()

	r := gin.Default()

	r.POST("/v1/chat/completions", func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id := "chatcmpl-" + uuid.New().String()
		created := time.Now().Unix()

		if req.Stream {
			c.Writer.Header().Set("Content-Type", "text/event-stream")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			for _, word := range strings.Fields(*reply) {
				fmt.Fprintf(c.Writer,
					`data: {"id":%q,"object":"chat.completion.chunk","created":%d,"model":%q,"choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n",
					id, created, req.Model, word+" ")
				c.Writer.Flush()
				time.Sleep(20 * time.Millisecond)
			}
			fmt.Fprint(c.Writer, "data: [DONE]\n\n")
			c.Writer.Flush()
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":      id,
			"object":  "chat.completion",
			"created": created,
			"model":   req.Model,
			"choices": []gin.H{
				{
					"index":         0,
					"message":       gin.H{"role": "assistant", "content": *reply},
					"finish_reason": "stop",
				},
			},
			"usage": gin.H{"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2},
		})
	})

	if err := r.Run(":" + *port); err != nil {
		log.Fatal(err)
	}
}
