package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pandemaniac/config"
	"github.com/katalvlaran/pandemaniac/runner"
	"github.com/katalvlaran/pandemaniac/seeding"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"
)

// pathGraph is A-B-C-D as an adjacency document.
const pathGraph = `{"A":["B"],"B":["A","C"],"C":["B","D"],"D":["C"]}`

func readLines(path string) []string {
	data, err := os.ReadFile(path)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(strings.HasSuffix(string(data), "\n")).Should(BeTrue())
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

var _ = Describe("Runner", func() {
	var (
		dir     string
		cfg     *config.Config
		logBuf  *bytes.Buffer
		logger  *log.Logger
		graphAt func(name, doc string) string
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "runner")
		Expect(err).ShouldNot(HaveOccurred())

		v := config.New()
		v.Set(config.KeyIterations, 4)
		v.Set(config.KeySeed, 11)
		v.Set(config.KeyOutputDir, filepath.Join(dir, "out"))
		cfg, err = config.Load(v)
		Expect(err).ShouldNot(HaveOccurred())

		logBuf = &bytes.Buffer{}
		logger, err = config.NewLogger(config.Log{Level: "info", Format: config.FormatJSON}, logBuf)
		Expect(err).ShouldNot(HaveOccurred())

		graphAt = func(name, doc string) string {
			p := filepath.Join(dir, name+".json")
			Expect(os.WriteFile(p, []byte(doc), 0o644)).Should(Succeed())
			return filepath.Join(dir, name)
		}
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("Should write k*iterations lines per strategy", func() {
		graph := graphAt("2.2.7", pathGraph)

		results, err := runner.New(cfg, logger).Run(context.Background(), graph, []string{"D", "v", "r"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results).Should(HaveLen(3))
		Expect(runner.Summary(results)).Should(Succeed())

		degree := readLines(filepath.Join(dir, "out", "2.2.7_d.txt"))
		Expect(degree).Should(Equal([]string{"B", "C", "B", "C", "B", "C", "B", "C"}))

		cover := readLines(results[1].Path)
		Expect(cover).Should(HaveLen(8))
		Expect(cover[0:2]).Should(Equal(cover[2:4]))

		random := readLines(results[2].Path)
		Expect(random).Should(HaveLen(8))
		for _, id := range random {
			idx, err := strconv.Atoi(id)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(idx).Should(BeNumerically(">=", 0))
			Expect(idx).Should(BeNumerically("<", 4))
		}

		Expect(logBuf.String()).Should(ContainSubstring("d successfully generated."))
		Expect(logBuf.String()).Should(ContainSubstring(`"rand_seed":11`))
		Expect(logBuf.String()).Should(ContainSubstring(`"components":1`))
	})

	It("Should keep going when one strategy fails", func() {
		graph := graphAt("2.2.7", pathGraph)

		results, err := runner.New(cfg, logger).Run(context.Background(), graph, []string{"x", "b"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].Err).Should(MatchError(seeding.ErrConfiguration))
		Expect(results[0].Path).Should(BeEmpty())
		Expect(results[1].Err).ShouldNot(HaveOccurred())
		Expect(results[1].Path).Should(BeAnExistingFile())

		summary := runner.Summary(results)
		Expect(summary).Should(MatchError(runner.ErrStrategyFailed))
		Expect(summary.Error()).Should(ContainSubstring("1 of 2 (x)"))
	})

	It("Should report a ranker asked for more seeds than nodes", func() {
		graph := graphAt("2.5.1", pathGraph)

		results, err := runner.New(cfg, logger).Run(context.Background(), graph, []string{"d", "m"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].Err).Should(MatchError(seeding.ErrInsufficientNodes))
		Expect(results[1].Err).Should(MatchError(seeding.ErrFallbackExhausted))
		_, statErr := os.Stat(filepath.Join(dir, "out", "2.5.1_d.txt"))
		Expect(os.IsNotExist(statErr)).Should(BeTrue())
	})

	It("Should abort on a malformed graph name", func() {
		graph := graphAt("tournament", pathGraph)

		_, err := runner.New(cfg, logger).Run(context.Background(), graph, []string{"d"})
		Expect(err).Should(MatchError(seeding.ErrConfiguration))
	})

	It("Should abort when the graph file is missing or no strategy is given", func() {
		_, err := runner.New(cfg, logger).Run(context.Background(), filepath.Join(dir, "2.2.9"), []string{"d"})
		Expect(err).Should(HaveOccurred())

		_, err = runner.New(cfg, logger).Run(context.Background(), filepath.Join(dir, "2.2.9"), nil)
		Expect(err).Should(MatchError(seeding.ErrConfiguration))
	})

	It("Should stop between strategies once the context is cancelled", func() {
		graph := graphAt("2.2.7", pathGraph)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := runner.New(cfg, logger).Run(ctx, graph, []string{"d", "e"})
		Expect(err).Should(MatchError(context.Canceled))
		Expect(results).Should(BeEmpty())
	})
})
