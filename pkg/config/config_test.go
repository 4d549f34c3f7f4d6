package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadenzahq/cadenza/pkg/config"
)

var _ = Describe("Config", func() {
	var tmpDir string
	var cfger *config.Configer

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "cadenza-config-*")
		Expect(err).NotTo(HaveOccurred())

		cfger, err = config.NewConfiger(tmpDir)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadConfig", func() {
		It("returns defaults when no config file exists", func() {
			cfg, err := cfger.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.API.Listen).To(Equal(":8090"))
			Expect(cfg.Embedding.Provider).To(Equal("charhash"))
			Expect(cfg.Embedding.Dimensions).To(Equal(uint(384)))
			Expect(cfg.VectorStore.Provider).To(Equal("memory"))
			Expect(cfg.Eventstream.Provider).To(Equal("nop"))
			Expect(cfg.Knowledge.TopK).To(Equal(5))
		})

		It("fills zero-value fields from defaults after a partial file", func() {
			path := filepath.Join(tmpDir, "config.toml")
			Expect(os.WriteFile(path, []byte("[embedding]\nprovider = \"ollama\"\n"), 0o600)).To(Succeed())

			cfg, err := cfger.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Embedding.Provider).To(Equal("ollama"))
			Expect(cfg.Embedding.Model).To(Equal("all-minilm"))
			Expect(cfg.API.Listen).To(Equal(":8090"))
		})

		It("errors on malformed TOML", func() {
			path := filepath.Join(tmpDir, "config.toml")
			Expect(os.WriteFile(path, []byte("not toml ==="), 0o600)).To(Succeed())

			_, err := cfger.LoadConfig()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SaveConfig", func() {
		It("round-trips a config through TOML", func() {
			cfg := config.NewDefaultConfig()
			cfg.API.Listen = ":9999"
			cfg.VectorStore.Provider = "sqlite"
			Expect(cfger.SaveConfig(cfg)).To(Succeed())

			loaded, err := cfger.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.API.Listen).To(Equal(":9999"))
			Expect(loaded.VectorStore.Provider).To(Equal("sqlite"))
		})

		It("rejects a nil config", func() {
			Expect(cfger.SaveConfig(nil)).To(HaveOccurred())
		})
	})

	Describe("key registry", func() {
		It("gets and sets values by dotted key", func() {
			Expect(cfger.SetConfigValue("embedding.model", "nomic-embed-text")).To(Succeed())

			got, err := cfger.GetConfigValue("embedding.model")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal("nomic-embed-text"))
		})

		It("rejects unknown keys", func() {
			Expect(cfger.SetConfigValue("no.such.key", "x")).To(HaveOccurred())
			_, err := cfger.GetConfigValue("no.such.key")
			Expect(err).To(HaveOccurred())
		})

		It("validates numeric keys", func() {
			Expect(cfger.SetConfigValue("knowledge.top_k", "zero")).To(HaveOccurred())
			Expect(cfger.SetConfigValue("knowledge.top_k", "0")).To(HaveOccurred())
			Expect(cfger.SetConfigValue("knowledge.top_k", "7")).To(Succeed())
		})

		It("lists every registered key exactly once", func() {
			keys := config.ValidConfigKeys()
			Expect(keys).To(ContainElement("api.listen"))
			Expect(keys).To(ContainElement("knowledge.top_k"))

			seen := map[string]int{}
			for _, k := range keys {
				seen[k]++
				Expect(config.IsValidConfigKey(k)).To(BeTrue())
			}
			for k, n := range seen {
				Expect(n).To(Equal(1), "key %s listed %d times", k, n)
			}
		})
	})

	Describe("InitViper", func() {
		It("layers env vars over file values", func() {
			path := filepath.Join(tmpDir, "config.toml")
			Expect(os.WriteFile(path, []byte("[api]\nlisten = \":7000\"\n"), 0o600)).To(Succeed())

			os.Setenv("CADENZA_API_LISTEN", ":7001")
			DeferCleanup(func() { os.Unsetenv("CADENZA_API_LISTEN") })

			v, err := config.InitViper(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.GetString("api.listen")).To(Equal(":7001"))
		})

		It("materializes a full Config via FromViper", func() {
			v, err := config.InitViper(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg := config.FromViper(v)
			Expect(cfg.Embedding.Dimensions).To(Equal(uint(384)))
			Expect(cfg.Eventstream.Topic).To(Equal("cadenza.actions"))
		})
	})
})
