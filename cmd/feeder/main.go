// Command feeder replays a JSON file of scraped page payloads against the
// organizer service, either over HTTP or by publishing to the Kafka ingest
// topic.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/scrapedocs/organizer/internal/organizer/document"
	"github.com/scrapedocs/organizer/pkg/config"
	"github.com/scrapedocs/organizer/pkg/kafka"
)

type stats struct {
	sent   int
	failed int
}

func main() {
	file := flag.String("file", "", "path to a JSON array of page payloads")
	transport := flag.String("transport", "http", "delivery transport: http or kafka")
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the organizer service (http transport)")
	brokers := flag.String("brokers", "localhost:9092", "comma-separated Kafka brokers (kafka transport)")
	topic := flag.String("topic", "page-ingest", "Kafka ingest topic (kafka transport)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: feeder -file pages.json [-transport http|kafka]")
		os.Exit(1)
	}

	payloads, err := loadPayloads(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load payloads: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	var s stats
	switch *transport {
	case "http":
		s = feedHTTP(*baseURL, payloads)
	case "kafka":
		s = feedKafka(*brokers, *topic, payloads)
	default:
		fmt.Fprintf(os.Stderr, "unknown transport %q\n", *transport)
		os.Exit(1)
	}

	fmt.Printf("=== Feeder ===\n")
	fmt.Printf("Payloads:  %d\n", len(payloads))
	fmt.Printf("Delivered: %d\n", s.sent)
	fmt.Printf("Failed:    %d\n", s.failed)
	fmt.Printf("Elapsed:   %s\n", time.Since(start).Round(time.Millisecond))
	if s.failed > 0 {
		os.Exit(1)
	}
}

func loadPayloads(path string) ([]document.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payloads []document.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return payloads, nil
}

func feedHTTP(baseURL string, payloads []document.Payload) stats {
	client := &http.Client{Timeout: 10 * time.Second}
	endpoint := strings.TrimRight(baseURL, "/") + "/api/v1/documents"

	var s stats
	for _, payload := range payloads {
		body, err := json.Marshal(payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal %s: %v\n", payload.URL, err)
			s.failed++
			continue
		}
		resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Fprintf(os.Stderr, "post %s: %v\n", payload.URL, err)
			s.failed++
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusAccepted {
			fmt.Fprintf(os.Stderr, "post %s: status %d\n", payload.URL, resp.StatusCode)
			s.failed++
			continue
		}
		s.sent++
	}
	return s
}

func feedKafka(brokers, topic string, payloads []document.Payload) stats {
	cfg := config.KafkaConfig{
		Brokers: strings.Split(brokers, ","),
	}
	producer := kafka.NewProducer(cfg, topic)
	defer producer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var s stats
	for _, payload := range payloads {
		if err := producer.Publish(ctx, kafka.Event{Key: payload.URL, Value: payload}); err != nil {
			fmt.Fprintf(os.Stderr, "publish %s: %v\n", payload.URL, err)
			s.failed++
			continue
		}
		s.sent++
	}
	return s
}
