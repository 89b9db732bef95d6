package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/andreiashu/powmem"
	"github.com/andreiashu/powmem/internal/logging"
)

var (
	label = color.New(color.FgCyan).SprintFunc()
	value = color.New(color.FgGreen, color.Bold).SprintFunc()
)

type rollCommand struct {
	Age       uint8  `short:"a" long:"age" description:"Age bracket 0..3 (16+, 24+, 32+, 40+)" default:"0"`
	Sex       uint8  `short:"s" long:"sex" description:"Sex 0..3 (female, male, nonbinary, bot)" default:"0"`
	Location  string `short:"l" long:"location" description:"Geohash of the location"`
	Lat       string `long:"lat" description:"Latitude, used when no geohash is given"`
	Lon       string `long:"lon" description:"Longitude, used when no geohash is given"`
	Precision int    `long:"precision" description:"Geohash characters derived from lat/lon" default:"6"`
	Bits      int    `short:"b" long:"bits" description:"Location precision in bits" default:"15"`
	Workers   int    `short:"w" long:"workers" description:"Mining goroutines (0 = one per CPU)" default:"0"`
	Batch     int    `long:"batch" description:"Tries per batch between progress updates" default:"1000"`
	Budget    uint64 `long:"budget" description:"Give up after this many tries (0 = never)" default:"0"`
}

func (c *rollCommand) location() (string, error) {
	if c.Location != "" {
		return c.Location, nil
	}
	if c.Lat == "" || c.Lon == "" {
		return "", errors.New("either --location or both --lat and --lon are required")
	}
	lat, err := strconv.ParseFloat(c.Lat, 64)
	if err != nil {
		return "", fmt.Errorf("parsing --lat: %w", err)
	}
	lon, err := strconv.ParseFloat(c.Lon, 64)
	if err != nil {
		return "", fmt.Errorf("parsing --lon: %w", err)
	}
	return powmem.EncodeLocation(lat, lon, c.Precision)
}

func (c *rollCommand) Execute(args []string) error {
	loc, err := c.location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("rolling "+loc),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("keys"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	mopts := []powmem.Option{
		powmem.WithGeobits(c.Bits),
		powmem.WithBatchSize(c.Batch),
		powmem.WithBudget(c.Budget),
		powmem.WithProgress(func(tries uint64) {
			_ = bar.Set64(int64(tries))
		}),
	}
	if c.Workers > 0 {
		mopts = append(mopts, powmem.WithWorkers(c.Workers))
	}
	miner := powmem.NewMiner(nil, mopts...)

	start := time.Now()
	res, err := miner.Mine(ctx, c.Age, c.Sex, loc)
	_ = bar.Finish()
	elapsed := time.Since(start)
	if err != nil {
		logging.Warnf("stopped after %d tries in %s", miner.Tries(), elapsed.Round(time.Millisecond))
		return err
	}

	nsec, err := powmem.EncodeNsec(res.Secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(color.Output, "%s %s\n", label("secret:"), value(res.SecretHex()))
	fmt.Fprintf(color.Output, "%s   %s\n", label("nsec:"), nsec)
	fmt.Fprintf(color.Output, "%s %s (%d tries, %.0f keys/s)\n", label("found in:"),
		elapsed.Round(time.Millisecond), res.Tries, float64(res.Tries)/elapsed.Seconds())
	return printPublicKey(res.Public, c.Bits)
}

type decodeCommand struct {
	Bits int `short:"b" long:"bits" description:"Location precision in bits" default:"15"`
	Args struct {
		Key string `positional-arg-name:"pubkey" description:"Hex or npub public key"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeCommand) Execute(args []string) error {
	key, err := parsePublicKey(c.Args.Key)
	if err != nil {
		return err
	}
	return printPublicKey(key, c.Bits)
}

func parsePublicKey(s string) ([]byte, error) {
	if strings.HasPrefix(s, "npub1") {
		return powmem.DecodeNpub(s)
	}
	return hexBytes(s)
}

func printPublicKey(pub []byte, bits int) error {
	a, err := powmem.DecodeASL(pub, bits)
	if err != nil {
		return err
	}
	npub, err := powmem.EncodeNpub(pub)
	if err != nil {
		return err
	}
	fmt.Fprintf(color.Output, "%s %x\n", label("public:"), pub)
	fmt.Fprintf(color.Output, "%s   %s\n", label("npub:"), npub)
	fmt.Fprintf(color.Output, "%s    %s\n", label("age:"), value(powmem.AgeLabel(a.Age)))
	fmt.Fprintf(color.Output, "%s    %s\n", label("sex:"), value(powmem.SexLabel(a.Sex)))
	if a.Location == "" {
		// Every location bit was zero.
		fmt.Fprintf(color.Output, "%s    %s\n", label("geo:"), value("0"))
		return nil
	}
	lat, lon, err := powmem.DecodeLocation(a.Location)
	if err != nil {
		return err
	}
	flag, err := powmem.FlagOf(a.Location, bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(color.Output, "%s    %s %s (%.4f, %.4f)\n", label("geo:"), value(a.Location), flag, lat, lon)
	fmt.Fprintf(color.Output, "%s    https://www.openstreetmap.org/search?query=%f,%f\n", label("map:"), lat, lon)
	return nil
}

type flagCommand struct {
	Bits int `short:"b" long:"bits" description:"Query precision in bits" default:"15"`
	Top  int `short:"n" long:"top" description:"Number of flags to list" default:"3"`
	Args struct {
		Geohash string `positional-arg-name:"geohash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *flagCommand) Execute(args []string) error {
	matches, err := powmem.NearestFlags(c.Args.Geohash, c.Bits, c.Top)
	if err != nil {
		return err
	}
	for i, m := range matches {
		fmt.Fprintf(color.Output, "%d. %s %-2s %s distance=%d %.0fkm\n",
			i+1, m.Symbol, m.Country, label(m.Geohash), m.Distance, m.Kilometers)
	}
	return nil
}

type packCommand struct {
	Bits int `short:"b" long:"bits" description:"Precision in bits" default:"15"`
	Args struct {
		Geohash string `positional-arg-name:"geohash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *packCommand) Execute(args []string) error {
	buf, err := powmem.PackGeo(c.Args.Geohash, c.Bits, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(color.Output, "%s %x\n", label("hex:"), buf)
	fmt.Fprintf(color.Output, "%s %s\n", label("bin:"), powmem.BinString(buf, c.Bits))
	return nil
}

type unpackCommand struct {
	Bits int  `short:"b" long:"bits" description:"Precision in bits" default:"15"`
	Raw  bool `long:"raw" description:"Keep trailing zero characters"`
	Args struct {
		Hex string `positional-arg-name:"hex"`
	} `positional-args:"yes" required:"yes"`
}

func (c *unpackCommand) Execute(args []string) error {
	buf, err := hexBytes(c.Args.Hex)
	if err != nil {
		return err
	}
	unpack := powmem.UnpackGeo
	if c.Raw {
		unpack = powmem.UnpackGeoRaw
	}
	s, err := unpack(buf, c.Bits)
	if err != nil {
		return err
	}
	fmt.Fprintln(color.Output, value(s))
	return nil
}
