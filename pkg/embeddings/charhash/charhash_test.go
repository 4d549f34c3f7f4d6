package charhash_test

import (
	"context"
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadenzahq/cadenza/pkg/embeddings/charhash"
)

func TestCharhash(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Charhash Suite")
}

var _ = Describe("Embedder", func() {
	var embedder *charhash.Embedder
	ctx := context.Background()

	BeforeEach(func() {
		embedder = charhash.NewEmbedder(0)
	})

	It("produces vectors of the default width", func() {
		vec, err := embedder.Embed(ctx, "authentic cadence")
		Expect(err).NotTo(HaveOccurred())
		Expect(vec).To(HaveLen(charhash.DefaultDimensions))
	})

	It("is bit-identical across calls", func() {
		first, err := embedder.Embed(ctx, "cadence")
		Expect(err).NotTo(HaveOccurred())
		second, err := embedder.Embed(ctx, "cadence")
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("produces unit-norm vectors for non-empty text", func() {
		vec, err := embedder.Embed(ctx, "a perfect authentic cadence resolves to the tonic")
		Expect(err).NotTo(HaveOccurred())

		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		Expect(math.Sqrt(norm)).To(BeNumerically("~", 1.0, 1e-6))
	})

	It("returns the zero vector for empty and whitespace text", func() {
		for _, text := range []string{"", "   ", "\t\n"} {
			vec, err := embedder.Embed(ctx, text)
			Expect(err).NotTo(HaveOccurred())
			for _, v := range vec {
				Expect(v).To(BeZero())
			}
		}
	})

	It("hashes text as given, without case folding", func() {
		lower, err := embedder.Embed(ctx, "half cadence")
		Expect(err).NotTo(HaveOccurred())
		upper, err := embedder.Embed(ctx, "Half Cadence")
		Expect(err).NotTo(HaveOccurred())
		Expect(upper).NotTo(Equal(lower))
	})

	It("weights multi-byte characters by rune position", func() {
		// "é" is two bytes; byte-offset indexing would give the
		// following rune weight 1/3 instead of 1/2
		small := charhash.NewEmbedder(16)
		vec, err := small.Embed(ctx, "éa")
		Expect(err).NotTo(HaveOccurred())

		want := make([]float32, 16)
		want[(0xE9*1)%16] += 1.0
		want[('a'*1)%16] += float32(1.0 / 2.0)
		var norm float64
		for _, v := range want {
			norm += float64(v) * float64(v)
		}
		inv := 1.0 / math.Sqrt(norm)
		for i := range want {
			want[i] = float32(float64(want[i]) * inv)
		}

		Expect(vec).To(Equal(want))
	})

	It("distinguishes different texts", func() {
		a, err := embedder.Embed(ctx, "authentic cadence")
		Expect(err).NotTo(HaveOccurred())
		b, err := embedder.Embed(ctx, "deceptive cadence")
		Expect(err).NotTo(HaveOccurred())
		Expect(a).NotTo(Equal(b))
	})

	It("honors a custom dimension count", func() {
		small := charhash.NewEmbedder(16)
		vec, err := small.Embed(ctx, "motif")
		Expect(err).NotTo(HaveOccurred())
		Expect(vec).To(HaveLen(16))
		Expect(small.Dimensions()).To(Equal(16))
	})
})
