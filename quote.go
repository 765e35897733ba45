package optionbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Spot quote lookup for an option's underlying symbol. This is a convenience
// for the CLI only: the book itself stores no prices and never calls out
// (pricing and valuation stay outside the engine).

const (
	lstcSearchURL = "https://www.ls-tc.de/_rpc/json/instrument/search/main?q="
	lstcChartURL  = "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?series=intraday&type=mini&instrumentId="
)

// Spot returns the latest intraday price for an underlying symbol, resolved
// and fetched from the ls-tc.de public JSON endpoints.
func Spot(client *http.Client, symbol string) (float64, error) {
	// Resolve the symbol to an instrument id first.
	var jsearch any
	if err := jwget(client, lstcSearchURL+url.QueryEscape(symbol), &jsearch); err != nil {
		return math.NaN(), fmt.Errorf("error searching %q: %w", symbol, err)
	}
	jid, err := jsonpath.Get("$[0].instrumentId", jsearch)
	if err != nil {
		return math.NaN(), fmt.Errorf("no instrument found for %q: %w", symbol, err)
	}
	id, ok := jid.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error resolving %q: instrumentId is not a number: %v", symbol, jid)
	}

	var jchart any
	addr := fmt.Sprintf("%s%d", lstcChartURL, int64(id))
	if err := jwget(client, addr, &jchart); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jchart)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q not a float %v", symbol, path, jval)
	}
	return val, nil
}

// jwget GETs addr and unmarshals the JSON body into data.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
