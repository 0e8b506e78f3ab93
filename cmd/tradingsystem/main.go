package main

import (
	"flag"
	"os"
	"path/filepath"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"github.com/ycsun666/MTH9815-Final/internal/algoexec"
	"github.com/ycsun666/MTH9815-Final/internal/algostream"
	"github.com/ycsun666/MTH9815-Final/internal/booking"
	"github.com/ycsun666/MTH9815-Final/internal/codec"
	"github.com/ycsun666/MTH9815-Final/internal/datagen"
	"github.com/ycsun666/MTH9815-Final/internal/execution"
	"github.com/ycsun666/MTH9815-Final/internal/gui"
	"github.com/ycsun666/MTH9815-Final/internal/history"
	"github.com/ycsun666/MTH9815-Final/internal/idgen"
	"github.com/ycsun666/MTH9815-Final/internal/inquiry"
	"github.com/ycsun666/MTH9815-Final/internal/marketdata"
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/obs"
	"github.com/ycsun666/MTH9815-Final/internal/ops"
	"github.com/ycsun666/MTH9815-Final/internal/position"
	"github.com/ycsun666/MTH9815-Final/internal/pricing"
	"github.com/ycsun666/MTH9815-Final/internal/risk"
	"github.com/ycsun666/MTH9815-Final/internal/streaming"
	"github.com/ycsun666/MTH9815-Final/pkg/conn"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config (empty = built-in defaults)")
	dataDir := flag.String("data-dir", "", "Override the generated data directory")
	outDir := flag.String("out-dir", "", "Override the historical output directory")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty = disabled)")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		logs.Errorf("load config: %+v", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.HistoryDir = *outDir
	}

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "tradingsystem",
			ServerAddress:   *pyroscopeAddr,
			Logger:          emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			logs.Errorf("pyroscope start: %+v", err)
			os.Exit(1)
		}
		defer func() { _ = profiler.Stop() }()
	}

	if err := run(cfg); err != nil {
		logs.Errorf("trading system: %+v", err)
		os.Exit(1)
	}
}

func run(cfg ops.Loaded) error {
	for _, dir := range []string{cfg.DataDir, cfg.HistoryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	logs.Info("generating ingress data...")
	gen := datagen.New(cfg.Seed)
	if err := gen.WriteAll(cfg.DataDir, cfg.Products.All(), cfg.PricePoints, cfg.BookPoints); err != nil {
		return err
	}
	logs.Info("ingress data generated")

	var mirror *history.Mirror
	if cfg.Postgres != nil {
		client, err := conn.Open(conn.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
			SSLMode:  cfg.Postgres.SSLMode,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		mirror, err = history.NewMirror(client.DB())
		if err != nil {
			return err
		}
		logs.Info("history mirror connected")
	}

	appenders := make([]*history.Appender, 0, 6)
	openAppender := func(name string) (*history.Appender, error) {
		a, err := history.OpenAppender(filepath.Join(cfg.HistoryDir, name))
		if err != nil {
			return nil, err
		}
		appenders = append(appenders, a)
		return a, nil
	}
	closeAll := func() {
		for _, a := range appenders {
			if err := a.Close(); err != nil {
				logs.Errorf("close output: %+v", err)
			}
		}
	}
	defer closeAll()

	positionOut, err := openAppender("positions.txt")
	if err != nil {
		return err
	}
	riskOut, err := openAppender("risk.txt")
	if err != nil {
		return err
	}
	executionOut, err := openAppender("executions.txt")
	if err != nil {
		return err
	}
	streamingOut, err := openAppender("streaming.txt")
	if err != nil {
		return err
	}
	inquiryOut, err := openAppender("aggregatedinquiries.txt")
	if err != nil {
		return err
	}
	guiOut, err := openAppender("gui.txt")
	if err != nil {
		return err
	}

	logs.Info("initializing services...")
	ids := idgen.New(cfg.Seed)
	pricingSvc := pricing.New(cfg.Products)
	algoStreamSvc := algostream.New()
	streamingSvc := streaming.New()
	marketDataSvc := marketdata.New(cfg.Products)
	algoExecSvc := algoexec.New(ids)
	executionSvc := execution.New()
	bookingSvc := booking.New(cfg.Products)
	positionSvc := position.New()
	riskSvc := risk.New(cfg.PV01)
	guiSvc := gui.New(guiOut, gui.DefaultThrottle)
	inquirySvc := inquiry.New(cfg.Products)

	positionHist := history.NewService("position", positionOut, mirror,
		func(p model.Position) string { return p.Product.CUSIP }, codec.PositionRecord)
	riskHist := history.NewService("risk", riskOut, mirror,
		func(v model.PV01) string { return v.Product.CUSIP }, codec.PV01Record)
	executionHist := history.NewService("execution", executionOut, mirror,
		func(o model.ExecutionOrder) string { return o.OrderID }, codec.ExecutionOrderRecord)
	streamingHist := history.NewService("streaming", streamingOut, mirror,
		func(s model.PriceStream) string { return s.Product.CUSIP }, codec.PriceStreamRecord)
	inquiryHist := history.NewService("inquiry", inquiryOut, mirror,
		func(i model.Inquiry) string { return i.InquiryID }, codec.InquiryRecord)

	counters := &obs.Counters{}

	logs.Info("linking service listeners...")
	pricingSvc.AddListener(algoStreamSvc.Listener())
	pricingSvc.AddListener(guiSvc.Listener())
	pricingSvc.AddListener(obs.Tally[model.Price](counters, obs.KindPrice))
	algoStreamSvc.AddListener(streamingSvc.Listener())
	marketDataSvc.AddListener(algoExecSvc.Listener())
	marketDataSvc.AddListener(obs.Tally[model.OrderBook](counters, obs.KindOrderBook))
	algoExecSvc.AddListener(executionSvc.Listener())
	executionSvc.AddListener(booking.NewExecutionListener(bookingSvc))
	bookingSvc.AddListener(positionSvc.Listener())
	bookingSvc.AddListener(obs.Tally[model.Trade](counters, obs.KindTrade))
	positionSvc.AddListener(riskSvc.Listener())

	positionSvc.AddListener(positionHist.Listener())
	positionSvc.AddListener(obs.Tally[model.Position](counters, obs.KindPosition))
	executionSvc.AddListener(executionHist.Listener())
	executionSvc.AddListener(obs.Tally[model.ExecutionOrder](counters, obs.KindExecution))
	streamingSvc.AddListener(streamingHist.Listener())
	streamingSvc.AddListener(obs.Tally[model.PriceStream](counters, obs.KindStream))
	riskSvc.AddListener(riskHist.Listener())
	riskSvc.AddListener(obs.Tally[model.PV01](counters, obs.KindRisk))
	inquirySvc.AddListener(inquiryHist.Listener())
	inquirySvc.AddListener(obs.Tally[model.Inquiry](counters, obs.KindInquiry))

	passes := []struct {
		name      string
		file      string
		subscribe func(*os.File) error
	}{
		{"price", "prices.txt", func(f *os.File) error { return pricingSvc.Connector().Subscribe(f) }},
		{"market", "marketdata.txt", func(f *os.File) error { return marketDataSvc.Connector().Subscribe(f) }},
		{"trade", "trades.txt", func(f *os.File) error { return bookingSvc.Connector().Subscribe(f) }},
		{"inquiry", "inquiries.txt", func(f *os.File) error { return inquirySvc.Connector().Subscribe(f) }},
	}
	for _, pass := range passes {
		logs.Infof("processing %s data...", pass.name)
		f, err := os.Open(filepath.Join(cfg.DataDir, pass.file))
		if err != nil {
			return err
		}
		err = pass.subscribe(f)
		f.Close()
		if err != nil {
			return err
		}
		logs.Infof("%s data completed", pass.name)
	}

	for _, sector := range cfg.Sectors {
		sectorRisk := riskSvc.GetBucketedRisk(sector)
		logs.Infof("bucketed risk %s: pv01=%s quantity=%d",
			sector.Name, sectorRisk.Value.String(), sectorRisk.Quantity)
	}
	counters.Each(func(k obs.Kind, n uint64) {
		logs.Infof("processed %d %s", n, k)
	})
	return nil
}

type emptyLogger struct{}

func (emptyLogger) Infof(string, ...interface{})  {}
func (emptyLogger) Debugf(string, ...interface{}) {}
func (emptyLogger) Errorf(string, ...interface{}) {}
