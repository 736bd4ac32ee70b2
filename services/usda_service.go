package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const usdaSearchPageSize = 10

// ExternalFood is a nutrition record from the USDA FoodData Central
// API, normalized per 100g.
type ExternalFood struct {
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	ExternalID string  `json:"external_id"`
}

type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService(apiKey string) *USDAService {
	return &USDAService{
		apiKey:  apiKey,
		baseURL: "https://api.nal.usda.gov/fdc/v1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type usdaSearchResponse struct {
	Foods []struct {
		FdcID         int64  `json:"fdcId"`
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// Search queries the FoodData Central search endpoint. Without an API
// key it returns no results.
func (s *USDAService) Search(query string) ([]ExternalFood, error) {
	if s.apiKey == "" {
		return nil, nil
	}

	u := fmt.Sprintf("%s/foods/search?query=%s&pageSize=%d&api_key=%s",
		s.baseURL, url.QueryEscape(query), usdaSearchPageSize, s.apiKey)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}

	results := make([]ExternalFood, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		nutrients := make(map[string]float64, len(f.FoodNutrients))
		for _, n := range f.FoodNutrients {
			if n.Value != 0 {
				nutrients[n.NutrientName] = n.Value
			}
		}

		food := ExternalFood{
			Name:       f.Description,
			Calories:   nutrients["Energy"],
			Protein:    nutrients["Protein"],
			Carbs:      nutrients["Carbohydrate, by difference"],
			Fat:        nutrients["Total lipid (fat)"],
			ExternalID: strconv.FormatInt(f.FdcID, 10),
		}
		// Entries without a name or calories are not usable as foods
		if food.Name == "" || food.Calories <= 0 {
			continue
		}
		results = append(results, food)
	}

	return results, nil
}

// SearchBestEffort degrades any lookup failure to an empty result set
// so a slow or broken upstream never fails the enclosing search.
func (s *USDAService) SearchBestEffort(query string) []ExternalFood {
	results, err := s.Search(query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("USDA lookup failed, returning no external results")
		return nil
	}
	return results
}
