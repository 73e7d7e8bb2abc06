package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var debugOutput io.Writer = os.Stdout

// SetDebugOutput redirects Debug lines, os.Stdout by default.
func SetDebugOutput(w io.Writer) {
	debugOutput = w
}

func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

// DebugWith prints one JSON line; the hostname is always added to context.
func DebugWith(service string, message string, context Context) {
	withHost := make(Context, len(context)+1)
	for k, v := range context {
		withHost[k] = v
	}

	if hostname, err := os.Hostname(); err == nil {
		withHost["hostname"] = hostname
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: withHost,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(debugOutput, string(data))
}
