// Package benchmark contains Go benchmarks for the document catalogue,
// tokenizer, and relationship graph, measuring throughput and allocation
// behaviour.
package benchmark

import (
	"fmt"
	"testing"

	"github.com/scrapedocs/organizer/internal/organizer"
	"github.com/scrapedocs/organizer/internal/organizer/document"
	"github.com/scrapedocs/organizer/internal/organizer/relation"
)

func payloadFor(i int) document.Payload {
	return document.Payload{
		URL:   fmt.Sprintf("https://docs.example.com/page-%d", i),
		Title: fmt.Sprintf("guide chapter %d", i),
		Content: document.Content{
			Text: "installation walkthrough covering configuration deployment monitoring and troubleshooting steps",
			Headings: []document.Heading{
				{Text: "getting started"},
				{Text: "advanced configuration"},
			},
		},
	}
}

// BenchmarkAddDocument measures ingestion throughput against catalogues of
// varying size. Each insert recomputes relationships against the whole
// catalogue, so cost grows with the preload.
func BenchmarkAddDocument(b *testing.B) {
	sizes := []int{0, 100, 1000}
	for _, preload := range sizes {
		b.Run(fmt.Sprintf("preload_%d", preload), func(b *testing.B) {
			org := organizer.New(0)
			for i := 0; i < preload; i++ {
				org.AddDocument(payloadFor(i))
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				org.AddDocument(payloadFor(preload + i))
			}
		})
	}
}

// BenchmarkAddVersion measures repeated ingestion of the same URL, which
// appends versions instead of creating documents.
func BenchmarkAddVersion(b *testing.B) {
	org := organizer.New(0)
	p := payloadFor(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		org.AddDocument(p)
	}
}

// BenchmarkRelatedDocuments measures related-document lookup over a densely
// connected catalogue.
func BenchmarkRelatedDocuments(b *testing.B) {
	org := organizer.New(0)
	var firstID string
	for i := 0; i < 1000; i++ {
		id, _ := org.AddDocument(payloadFor(i))
		if i == 0 {
			firstID = id
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		related := org.RelatedDocuments(firstID)
		_ = related
	}
}

// BenchmarkSearch measures single-term search latency over 10 000 documents.
func BenchmarkSearch(b *testing.B) {
	org := organizer.New(0)
	for i := 0; i < 10000; i++ {
		org.AddDocument(payloadFor(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results := org.Search("deployment")
		_ = results
	}
}

// BenchmarkSearchParallel measures concurrent read throughput.
func BenchmarkSearchParallel(b *testing.B) {
	org := organizer.New(0)
	for i := 0; i < 10000; i++ {
		org.AddDocument(payloadFor(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			results := org.Search("deployment")
			_ = results
		}
	})
}

// BenchmarkJaccard measures pairwise similarity scoring for term sets of
// varying overlap.
func BenchmarkJaccard(b *testing.B) {
	sizes := []int{10, 100, 1000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("terms_%d", size), func(b *testing.B) {
			left := make(map[string]struct{}, size)
			right := make(map[string]struct{}, size)
			for i := 0; i < size; i++ {
				left[fmt.Sprintf("term-%d", i)] = struct{}{}
				right[fmt.Sprintf("term-%d", i+size/2)] = struct{}{}
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				score := relation.Jaccard(left, right)
				_ = score
			}
		})
	}
}
