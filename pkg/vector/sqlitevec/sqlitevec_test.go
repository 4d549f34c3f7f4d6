package sqlitevec_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/vector"
	"github.com/cadenzahq/cadenza/pkg/vector/sqlitevec"
)

func TestSQLiteVec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SQLiteVec Suite")
}

var _ = Describe("SQLiteVecDriver", func() {
	var logger *zap.Logger

	BeforeEach(func() {
		logger = zap.NewNop()
	})

	newDriver := func() *sqlitevec.SQLiteVecDriver {
		driver, err := sqlitevec.NewSQLiteVecDriver(sqlitevec.Config{
			DBPath:     ":memory:",
			Dimensions: 4,
		}, logger)
		Expect(err).NotTo(HaveOccurred())
		return driver
	}

	Describe("NewSQLiteVecDriver", func() {
		It("should return an error when DBPath is empty", func() {
			_, err := sqlitevec.NewSQLiteVecDriver(sqlitevec.Config{DBPath: ""}, logger)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("database path is required"))
		})

		It("should create a driver with an in-memory database", func() {
			driver := newDriver()
			Expect(driver.Close()).To(Succeed())
		})

		It("should error when dimension not specified", func() {
			_, err := sqlitevec.NewSQLiteVecDriver(sqlitevec.Config{
				DBPath: ":memory:",
			}, logger)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Add and Get", func() {
		var driver *sqlitevec.SQLiteVecDriver

		BeforeEach(func() {
			driver = newDriver()
			docs := []vector.Document{
				{ID: "rule-cadence-1", Embedding: []float32{0.1, 0.2, 0.3, 0.4}},
				{ID: "rule-phrase-1", Embedding: []float32{0.5, 0.6, 0.7, 0.8}},
			}
			Expect(driver.Add(context.Background(), docs)).To(Succeed())
		})

		AfterEach(func() {
			Expect(driver.Close()).To(Succeed())
		})

		It("should do nothing when given empty docs", func() {
			Expect(driver.Add(context.Background(), []vector.Document{})).To(Succeed())
		})

		It("should return nil for empty IDs", func() {
			docs, err := driver.Get(context.Background(), []string{})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(BeNil())
		})

		It("should retrieve documents with embeddings by IDs", func() {
			docs, err := driver.Get(context.Background(), []string{"rule-cadence-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].Embedding).To(HaveLen(4))
			Expect(docs[0].Embedding[0]).To(BeNumerically("~", 0.1, 0.001))
			Expect(docs[0].Embedding[3]).To(BeNumerically("~", 0.4, 0.001))
		})

		It("should skip non-existent IDs", func() {
			docs, err := driver.Get(context.Background(), []string{"rule-cadence-1", "nonexistent"})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].ID).To(Equal("rule-cadence-1"))
		})

		It("should update an existing document in place", func() {
			updated := []vector.Document{
				{ID: "rule-cadence-1", Embedding: []float32{0.9, 0.9, 0.9, 0.9}},
			}
			Expect(driver.Add(context.Background(), updated)).To(Succeed())

			docs, err := driver.Get(context.Background(), []string{"rule-cadence-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].Embedding[0]).To(BeNumerically("~", 0.9, 0.001))
		})
	})

	Describe("Query", func() {
		var driver *sqlitevec.SQLiteVecDriver

		BeforeEach(func() {
			driver = newDriver()
			docs := []vector.Document{
				{ID: "rule-near", Embedding: []float32{1, 0, 0, 0}},
				{ID: "rule-far", Embedding: []float32{0, 0, 0, 1}},
			}
			Expect(driver.Add(context.Background(), docs)).To(Succeed())
		})

		AfterEach(func() {
			Expect(driver.Close()).To(Succeed())
		})

		It("should rank the closest document first", func() {
			results, err := driver.Query(context.Background(), []float32{0.9, 0.1, 0, 0}, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ID).To(Equal("rule-near"))
			Expect(results[0].Score).To(BeNumerically(">", results[1].Score))
		})

		It("should cap results at topK", func() {
			results, err := driver.Query(context.Background(), []float32{1, 0, 0, 0}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
		})
	})

	Describe("Delete", func() {
		var driver *sqlitevec.SQLiteVecDriver

		BeforeEach(func() {
			driver = newDriver()
			docs := []vector.Document{
				{ID: "rule-1", Embedding: []float32{0.1, 0.2, 0.3, 0.4}},
				{ID: "rule-2", Embedding: []float32{0.5, 0.6, 0.7, 0.8}},
			}
			Expect(driver.Add(context.Background(), docs)).To(Succeed())
		})

		AfterEach(func() {
			Expect(driver.Close()).To(Succeed())
		})

		It("should remove deleted documents", func() {
			Expect(driver.Delete(context.Background(), []string{"rule-1"})).To(Succeed())

			docs, err := driver.Get(context.Background(), []string{"rule-1", "rule-2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].ID).To(Equal("rule-2"))
		})

		It("should do nothing for empty IDs", func() {
			Expect(driver.Delete(context.Background(), nil)).To(Succeed())
		})
	})
})
