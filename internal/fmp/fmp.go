package fmp

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stockfolio/models"
)

const defaultBaseURL = "https://financialmodelingprep.com/stable"

// profile is one element of the FMP profile response array.
type profile struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Price       float64 `json:"price"`
	LastDiv     float64 `json:"lastDividend"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"marketCap"`
}

// Client resolves stock metadata from financialmodelingprep.com.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	apiKey  string
	logger  *zap.SugaredLogger
}

func NewClient(logger *zap.SugaredLogger) *Client {
	client := retryablehttp.NewClient()
	// Single attempt. Callers treat an unreachable provider the same as an
	// unknown symbol, so there is nothing to gain from retrying here.
	client.RetryMax = 0
	client.Logger = nil

	return &Client{
		http:    client,
		baseURL: defaultBaseURL,
		apiKey:  os.Getenv("FMP_API_KEY"),
		logger:  logger,
	}
}

// FindBySymbol resolves a ticker symbol to a stock. It returns nil both when
// the provider does not know the symbol and when the provider is unreachable
// or answers with garbage: every failure mode collapses to "no stock", with
// the cause logged.
func (f *Client) FindBySymbol(symbol string) *models.Stock {
	url := fmt.Sprintf("%s/profile?symbol=%s&apikey=%s", f.baseURL, symbol, f.apiKey)

	res, err := f.http.Get(url)
	if err != nil {
		f.logger.Infof("Unable to fetch profile for %v: %v", symbol, err)
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		f.logger.Infof("Provider returned status %v for %v", res.StatusCode, symbol)
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		f.logger.Infof("Unable to read profile for %v: %v", symbol, err)
		return nil
	}

	var profiles []profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		f.logger.Infof("Unable to parse profile for %v: %v", symbol, err)
		return nil
	}

	if len(profiles) == 0 {
		f.logger.Infof("Provider has no profile for %v", symbol)
		return nil
	}

	p := profiles[0]
	return &models.Stock{
		Symbol:      p.Symbol,
		CompanyName: p.CompanyName,
		Purchase:    decimal.NewFromFloat(p.Price),
		LastDiv:     decimal.NewFromFloat(p.LastDiv),
		Industry:    p.Industry,
		MarketCap:   p.MarketCap,
	}
}
