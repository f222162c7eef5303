package main

import (
	"flag"
	"os"
	"strconv"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/ecosim"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax/germany"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/utils/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 未指定配置时使用的年度
	year = flag.String("year", germany.Label2024, "tax year used when no config is given")
	// 单次计算的收入，同时指定income-after时计算退税额
	income      = flag.Float64("income", 0, "taxable income")
	incomeAfter = flag.Float64("income-after", 0, "taxable income after deductions, prints the tax refund")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log       = logrus.WithField("module", "incometax")
	ecosimLog = logrus.WithField("module", "ecosim")

	printer = message.NewPrinter(language.German)
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// 获取配置
	var c config.Config
	if *configPath != "" || *configData != "" {
		var err error
		c, err = config.Load(*configPath, *configData)
		if err != nil {
			log.Panicf("%v", err)
		}
	} else {
		tax, err := germany.ParseType(*year)
		if err != nil {
			log.Panicf("year must be one of %v: %v", germany.Years(), err)
		}
		c.Tax = tax
	}
	log.Infof("%+v", c)

	if set["income"] {
		if err := runSingle(c.Tax, *income, *incomeAfter, set["income-after"]); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if c.Levy != nil {
		if err := runLevy(c.Tax, c.Levy); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if !set["income"] && c.Levy == nil {
		log.Warn("nothing to do: specify -income or a levy block in the config")
	}
}

// runSingle 计算单个收入的税额，指定调整后收入时同时计算退税额
func runSingle(tax incometax.IncomeTax, before, after float64, withRefund bool) error {
	due, err := tax.Calculate(before)
	if err != nil {
		return err
	}
	printer.Printf("income tax %s on %.2f €: %d €\n", strconv.FormatUint(uint64(tax.Year()), 10), before, int64(due))
	if !withRefund {
		return nil
	}
	refund, err := tax.TaxRefund(before, after)
	if err != nil {
		return err
	}
	if refund >= 0 {
		printer.Printf("refund for %.2f € → %.2f €: %d €\n", before, after, int64(refund))
	} else {
		printer.Printf("additional tax for %.2f € → %.2f €: %d €\n", before, after, int64(-refund))
	}
	return nil
}

// runLevy 对配置中的全部个体批量征税
func runLevy(tax incometax.IncomeTax, levy *config.Levy) error {
	sim := ecosim.NewEconomySim(tax, ecosimLog)
	ids := make([]int32, 0, len(levy.Agents))
	for _, a := range levy.Agents {
		if err := sim.AddAgent(ecosim.NewAgent(a.ID, a.Income, a.Deduction)); err != nil {
			return err
		}
		ids = append(ids, a.ID)
	}
	refunds, err := sim.CalculateRefunds(ids)
	if err != nil {
		return err
	}
	total, incomes, err := sim.CalculateTaxesDue(ids, levy.Redistribution)
	if err != nil {
		return err
	}
	for i, id := range ids {
		printer.Printf("agent %d: net income %.2f €, refund from deductions %d €\n", id, incomes[i], int64(refunds[i]))
	}
	printer.Printf("total tax collected: %d €\n", int64(total))
	return nil
}
