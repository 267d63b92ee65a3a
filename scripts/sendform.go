package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// Posts a sample submission to a running relay:
//
//	go run scripts/sendform.go [relay-url]
func main() {
	target := "http://localhost:8088/"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	form := url.Values{
		"from_name":  {"Smoke Test"},
		"from_email": {"smoke@example.com"},
		"title":      {"Relay smoke test"},
		"body":       {"If you can read this, the relay works."},
	}

	resp, err := http.PostForm(target, form)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Status: %s\nBody: %s\n", resp.Status, body)
}
