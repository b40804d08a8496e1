package service

import (
	"sort"

	"spacex_dashboard/internal/models"
	"spacex_dashboard/internal/repository"
)

const (
	labelSuccess = "Success"
	labelFailure = "Failure"

	titleAllSuccess  = "Total Successful Launches by Site"
	titleSiteOutcome = "Success vs Failure for site "
	titleScatterAll  = "Payload vs. Outcome for all sites"
	titleScatterSite = "Payload vs. Outcome for "
	axisPayload      = "Payload Mass (kg)"
	axisOutcome      = "Launch Outcome"
	legendBooster    = "Booster Version Category"
	namesLaunchSite  = "Launch Site"
	valuesSuccessCnt = "Success Count"
	namesOutcome     = "Outcome"
	valuesOutcomeCnt = "Count"
)

type ChartService struct {
	launches   repository.LaunchRepo
	siteFilter bool
}

func NewChartService(launches repository.LaunchRepo, opts Options) *ChartService {
	return &ChartService{launches: launches, siteFilter: opts.ScatterSiteFilter}
}

// PieChart counts successes per site for ALL, otherwise successes vs
// failures at the given site. An unknown site gives a chart with no slices.
func (s *ChartService) PieChart(site string) models.ChartSpec {
	if site == models.SiteAll {
		counts := make(map[string]int)
		for _, r := range s.launches.Records() {
			if r.Class == models.ClassSuccess {
				counts[r.Site]++
			}
		}
		return models.ChartSpec{
			Kind:   models.ChartPie,
			Title:  titleAllSuccess,
			Labels: map[string]string{"names": namesLaunchSite, "values": valuesSuccessCnt},
			Slices: toSlices(counts),
		}
	}

	counts := make(map[string]int)
	for _, r := range s.launches.Records() {
		if r.Site != site {
			continue
		}
		counts[outcomeLabel(r.Class)]++
	}
	return models.ChartSpec{
		Kind:   models.ChartPie,
		Title:  titleSiteOutcome + site,
		Labels: map[string]string{"names": namesOutcome, "values": valuesOutcomeCnt},
		Slices: toSlices(counts),
	}
}

// ScatterChart plots outcome against payload for rows inside payload,
// one series per booster category. The range is taken as given.
func (s *ChartService) ScatterChart(site string, payload models.PayloadRange) models.ChartSpec {
	all := site == models.SiteAll

	var (
		order  []string
		points = make(map[string][]models.Point)
	)
	for _, r := range s.launches.Records() {
		if !payload.Contains(r.PayloadMassKg) {
			continue
		}
		if !all && s.siteFilter && r.Site != site {
			continue
		}
		if _, ok := points[r.BoosterCategory]; !ok {
			order = append(order, r.BoosterCategory)
		}
		points[r.BoosterCategory] = append(points[r.BoosterCategory], models.Point{
			X: r.PayloadMassKg,
			Y: float64(r.Class),
		})
	}

	series := make([]models.Series, 0, len(order))
	for _, name := range order {
		series = append(series, models.Series{Name: name, Points: points[name]})
	}

	title := titleScatterAll
	if !all {
		title = titleScatterSite + site
	}
	return models.ChartSpec{
		Kind:  models.ChartScatter,
		Title: title,
		Labels: map[string]string{
			"x":     axisPayload,
			"y":     axisOutcome,
			"color": legendBooster,
		},
		Series: series,
	}
}

func outcomeLabel(class int) string {
	if class == models.ClassSuccess {
		return labelSuccess
	}
	return labelFailure
}

// toSlices orders by count descending, then label, so output is stable.
func toSlices(counts map[string]int) []models.Slice {
	out := make([]models.Slice, 0, len(counts))
	for label, n := range counts {
		out = append(out, models.Slice{Label: label, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}
