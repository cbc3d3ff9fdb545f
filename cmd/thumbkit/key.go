package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gogpu/thumbkit/genai"
)

func runKey(args []string) error {
	s, err := genai.DefaultCredentialStore()
	if err != nil {
		return err
	}
	switch {
	case len(args) == 2 && args[0] == "set":
		if err := s.Save(args[1]); err != nil {
			return err
		}
		fmt.Printf("key saved to %s\n", s.Path())
		return nil
	case len(args) == 1 && args[0] == "clear":
		return s.Clear()
	default:
		return errors.New("usage: thumbkit key set <api-key> | thumbkit key clear")
	}
}

// mimeOf sniffs the content type of an uploaded image.
func mimeOf(data []byte) string {
	return http.DetectContentType(data)
}
