package ranking_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/recruitiq/internal/domain/aggregate"
	"github.com/okian/recruitiq/internal/domain/model"
	"github.com/okian/recruitiq/internal/domain/ranking"
	"github.com/okian/recruitiq/internal/domain/registry"
)

const (
	metricTechnical     = "Technical Skills"
	metricCommunication = "Communication"
)

func buildTable(candidates []model.Candidate, scores map[string][]model.Score) *aggregate.Table {
	reg, err := registry.New([]string{metricTechnical, metricCommunication})
	So(err, ShouldBeNil)
	return aggregate.Build(candidates, scores, reg)
}

// exampleTable builds the three-candidate table used across method tests:
// A (Technical=8, Communication=6), B (Technical=8, Communication=9),
// C (Technical=5, Communication=7), listed in that order.
func exampleTable() *aggregate.Table {
	candidates := []model.Candidate{
		{ID: "a", SessionID: "s1", Name: "A"},
		{ID: "b", SessionID: "s1", Name: "B"},
		{ID: "c", SessionID: "s1", Name: "C"},
	}
	scores := map[string][]model.Score{
		"a": {
			{CandidateID: "a", Metric: metricTechnical, Value: 8},
			{CandidateID: "a", Metric: metricCommunication, Value: 6},
		},
		"b": {
			{CandidateID: "b", Metric: metricTechnical, Value: 8},
			{CandidateID: "b", Metric: metricCommunication, Value: 9},
		},
		"c": {
			{CandidateID: "c", Metric: metricTechnical, Value: 5},
			{CandidateID: "c", Metric: metricCommunication, Value: 7},
		},
	}
	return buildTable(candidates, scores)
}

func TestSingleMetricRanking(t *testing.T) {
	Convey("Given candidates A, B, C with technical and communication scores", t, func() {
		table := exampleTable()

		Convey("When ranking by the technical metric with top_n=2", func() {
			entries, err := ranking.Rank(table, ranking.Config{
				Method: ranking.SingleMetric,
				Metric: metricTechnical,
				TopN:   2,
			})
			So(err, ShouldBeNil)

			Convey("Then A precedes B because ties keep the listing order", func() {
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].Name, ShouldEqual, "A")
				So(entries[0].Score, ShouldEqual, 8)
				So(entries[1].Rank, ShouldEqual, 2)
				So(entries[1].Name, ShouldEqual, "B")
				So(entries[1].Score, ShouldEqual, 8)
			})
		})

		Convey("When a candidate misses the chosen metric", func() {
			candidates := []model.Candidate{
				{ID: "a", Name: "A"},
				{ID: "d", Name: "D"},
			}
			scores := map[string][]model.Score{
				"a": {{CandidateID: "a", Metric: metricTechnical, Value: 8}},
				"d": {{CandidateID: "d", Metric: metricCommunication, Value: 9}},
			}
			partial := buildTable(candidates, scores)

			entries, err := ranking.Rank(partial, ranking.Config{
				Method: ranking.SingleMetric,
				Metric: metricTechnical,
				TopN:   10,
			})
			So(err, ShouldBeNil)

			Convey("Then the candidate without that metric never appears", func() {
				So(entries, ShouldHaveLength, 1)
				So(entries[0].Name, ShouldEqual, "A")
			})
		})

		Convey("When the chosen metric is not in the active set", func() {
			_, err := ranking.Rank(table, ranking.Config{
				Method: ranking.SingleMetric,
				Metric: "Juggling",
				TopN:   2,
			})

			Convey("Then it fails with a field-level config error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ranking.ErrInvalidConfig), ShouldBeTrue)
				var cfgErr *ranking.ConfigError
				So(errors.As(err, &cfgErr), ShouldBeTrue)
				So(cfgErr.Field, ShouldEqual, "metric")
			})
		})
	})
}

func TestWeightedAverageRanking(t *testing.T) {
	Convey("Given candidates A, B, C", t, func() {
		table := exampleTable()

		Convey("When ranking with Technical=1.0 and Communication=0.5, top_n=2", func() {
			entries, err := ranking.Rank(table, ranking.Config{
				Method: ranking.WeightedAverage,
				Weights: map[string]float64{
					metricTechnical:     1.0,
					metricCommunication: 0.5,
				},
				TopN: 2,
			})
			So(err, ShouldBeNil)

			Convey("Then B=12.5 leads and A=11 follows", func() {
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Name, ShouldEqual, "B")
				So(entries[0].Score, ShouldAlmostEqual, 12.5)
				So(entries[1].Name, ShouldEqual, "A")
				So(entries[1].Score, ShouldAlmostEqual, 11)
			})
		})

		Convey("When a candidate misses a metric", func() {
			candidates := []model.Candidate{
				{ID: "a", Name: "A"},
				{ID: "d", Name: "D"},
			}
			scores := map[string][]model.Score{
				"a": {
					{CandidateID: "a", Metric: metricTechnical, Value: 8},
					{CandidateID: "a", Metric: metricCommunication, Value: 6},
				},
				"d": {{CandidateID: "d", Metric: metricTechnical, Value: 10}},
			}
			partial := buildTable(candidates, scores)

			entries, err := ranking.Rank(partial, ranking.Config{
				Method: ranking.WeightedAverage,
				TopN:   10,
			})
			So(err, ShouldBeNil)

			Convey("Then the missing metric contributes zero, not exclusion", func() {
				So(entries, ShouldHaveLength, 2)
				byName := map[string]float64{}
				for _, e := range entries {
					byName[e.Name] = e.Score
				}
				So(byName["A"], ShouldAlmostEqual, 14) // 8 + 6, default weight 1.0
				So(byName["D"], ShouldAlmostEqual, 10) // 10 + 0 for the missing metric
			})
		})

		Convey("When a weight is outside [0, 1]", func() {
			_, err := ranking.Rank(table, ranking.Config{
				Method:  ranking.WeightedAverage,
				Weights: map[string]float64{metricTechnical: 1.5},
				TopN:    2,
			})

			Convey("Then it fails with a config error", func() {
				So(errors.Is(err, ranking.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When a weight names a metric outside the active set", func() {
			_, err := ranking.Rank(table, ranking.Config{
				Method:  ranking.WeightedAverage,
				Weights: map[string]float64{"Juggling": 0.5},
				TopN:    2,
			})

			var cfgErr *ranking.ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Field, ShouldEqual, "weights")
		})
	})
}

func TestCompositeRanking(t *testing.T) {
	Convey("Given candidates A, B, C", t, func() {
		table := exampleTable()

		Convey("When ranking normalized with top_n=2", func() {
			entries, err := ranking.Rank(table, ranking.Config{
				Method:    ranking.Composite,
				TopN:      2,
				Normalize: true,
			})
			So(err, ShouldBeNil)

			Convey("Then B=1.0 leads and A=0.5 follows", func() {
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Name, ShouldEqual, "B")
				So(entries[0].Score, ShouldAlmostEqual, 1.0)
				So(entries[1].Name, ShouldEqual, "A")
				So(entries[1].Score, ShouldAlmostEqual, 0.5)
			})
		})

		Convey("When a metric is constant across all candidates", func() {
			candidates := []model.Candidate{
				{ID: "a", Name: "A"},
				{ID: "b", Name: "B"},
			}
			scores := map[string][]model.Score{
				"a": {
					{CandidateID: "a", Metric: metricTechnical, Value: 7},
					{CandidateID: "a", Metric: metricCommunication, Value: 3},
				},
				"b": {
					{CandidateID: "b", Metric: metricTechnical, Value: 7},
					{CandidateID: "b", Metric: metricCommunication, Value: 9},
				},
			}
			constant := buildTable(candidates, scores)

			entries, err := ranking.Rank(constant, ranking.Config{
				Method:    ranking.Composite,
				TopN:      2,
				Normalize: true,
			})
			So(err, ShouldBeNil)

			Convey("Then the constant column normalizes to 0.0 for everyone", func() {
				// Technical contributes 0.0; only communication discriminates.
				byName := map[string]float64{}
				for _, e := range entries {
					byName[e.Name] = e.Score
				}
				So(byName["A"], ShouldAlmostEqual, 0.0) // (0 + 0) / 2
				So(byName["B"], ShouldAlmostEqual, 0.5) // (0 + 1) / 2
			})

			Convey("And normalized scores stay within [0, 1]", func() {
				for _, e := range entries {
					So(e.Score, ShouldBeGreaterThanOrEqualTo, 0.0)
					So(e.Score, ShouldBeLessThanOrEqualTo, 1.0)
				}
			})
		})

		Convey("When a candidate misses a metric", func() {
			candidates := []model.Candidate{
				{ID: "a", Name: "A"},
				{ID: "d", Name: "D"},
			}
			scores := map[string][]model.Score{
				"a": {
					{CandidateID: "a", Metric: metricTechnical, Value: 8},
					{CandidateID: "a", Metric: metricCommunication, Value: 6},
				},
				"d": {{CandidateID: "d", Metric: metricTechnical, Value: 10}},
			}
			partial := buildTable(candidates, scores)

			entries, err := ranking.Rank(partial, ranking.Config{
				Method: ranking.Composite,
				TopN:   10,
			})
			So(err, ShouldBeNil)

			Convey("Then the mean covers only present columns, not a zero fill", func() {
				byName := map[string]float64{}
				for _, e := range entries {
					byName[e.Name] = e.Score
				}
				So(byName["A"], ShouldAlmostEqual, 7)  // (8 + 6) / 2
				So(byName["D"], ShouldAlmostEqual, 10) // only the present value
			})
		})
	})
}

func TestRankingCommonProperties(t *testing.T) {
	Convey("Given the example table", t, func() {
		table := exampleTable()
		configs := []ranking.Config{
			{Method: ranking.SingleMetric, Metric: metricTechnical, TopN: 2},
			{Method: ranking.WeightedAverage, TopN: 2},
			{Method: ranking.Composite, TopN: 2, Normalize: true},
		}

		Convey("Then every method yields min(top_n, rankable) entries with contiguous ranks", func() {
			for _, cfg := range configs {
				entries, err := ranking.Rank(table, cfg)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				for i, e := range entries {
					So(e.Rank, ShouldEqual, i+1)
				}
			}
		})

		Convey("And every method sorts non-increasing by score", func() {
			for _, cfg := range configs {
				cfg.TopN = 3
				entries, err := ranking.Rank(table, cfg)
				So(err, ShouldBeNil)
				for i := 1; i < len(entries); i++ {
					So(entries[i].Score, ShouldBeLessThanOrEqualTo, entries[i-1].Score)
				}
			}
		})

		Convey("And top_n above the candidate count is clamped", func() {
			entries, err := ranking.Rank(table, ranking.Config{
				Method: ranking.WeightedAverage,
				TopN:   50,
			})
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
		})

		Convey("And the same input twice yields identical output", func() {
			cfg := ranking.Config{Method: ranking.Composite, TopN: 3, Normalize: true}
			first, err := ranking.Rank(table, cfg)
			So(err, ShouldBeNil)
			second, err := ranking.Rank(table, cfg)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})

		Convey("And unscored candidates never appear in any method", func() {
			candidates := []model.Candidate{
				{ID: "a", Name: "A"},
				{ID: "x", Name: "X"}, // never evaluated
			}
			scores := map[string][]model.Score{
				"a": {{CandidateID: "a", Metric: metricTechnical, Value: 8}},
			}
			sparse := buildTable(candidates, scores)

			for _, cfg := range configs {
				cfg.TopN = 10
				entries, err := ranking.Rank(sparse, cfg)
				So(err, ShouldBeNil)
				for _, e := range entries {
					So(e.Name, ShouldNotEqual, "X")
				}
			}
		})
	})

	Convey("Given tied candidates", t, func() {
		candidates := []model.Candidate{
			{ID: "p", Name: "P"},
			{ID: "q", Name: "Q"},
			{ID: "r", Name: "R"},
		}
		scores := map[string][]model.Score{
			"p": {{CandidateID: "p", Metric: metricTechnical, Value: 5}},
			"q": {{CandidateID: "q", Metric: metricTechnical, Value: 9}},
			"r": {{CandidateID: "r", Metric: metricTechnical, Value: 5}},
		}
		table := buildTable(candidates, scores)

		Convey("Then equal scores keep their input listing order", func() {
			entries, err := ranking.Rank(table, ranking.Config{
				Method: ranking.SingleMetric,
				Metric: metricTechnical,
				TopN:   3,
			})
			So(err, ShouldBeNil)
			So(entries[0].Name, ShouldEqual, "Q")
			So(entries[1].Name, ShouldEqual, "P")
			So(entries[2].Name, ShouldEqual, "R")
		})
	})
}

func TestRankingConfigValidation(t *testing.T) {
	Convey("Given the example table", t, func() {
		table := exampleTable()

		Convey("When top_n is zero or negative", func() {
			for _, n := range []int{0, -3} {
				_, err := ranking.Rank(table, ranking.Config{
					Method: ranking.WeightedAverage,
					TopN:   n,
				})
				var cfgErr *ranking.ConfigError
				So(errors.As(err, &cfgErr), ShouldBeTrue)
				So(cfgErr.Field, ShouldEqual, "top_n")
			}
		})

		Convey("When the method is unknown", func() {
			_, err := ranking.Rank(table, ranking.Config{
				Method: ranking.Method("astrology"),
				TopN:   2,
			})
			So(errors.Is(err, ranking.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When single metric is requested without a metric", func() {
			_, err := ranking.Rank(table, ranking.Config{
				Method: ranking.SingleMetric,
				TopN:   2,
			})
			var cfgErr *ranking.ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Field, ShouldEqual, "metric")
		})
	})
}
