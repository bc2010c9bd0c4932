package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/common"
	"github.com/yevv0ne/placepick/infrastructures/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int8

const (
	LogLevelNull    LogLevel = LogLevel(zap.FatalLevel)
	LogLevelDebug            = LogLevel(zap.DebugLevel)
	LogLevelInfo             = LogLevel(zap.InfoLevel)
	LogLevelWarning          = LogLevel(zap.WarnLevel)
	LogLevelError            = LogLevel(zap.ErrorLevel)
	LogLevelPanic            = LogLevel(zap.PanicLevel)
	LogLevelFatal            = LogLevel(zap.FatalLevel)
)

// Logger wraps a zap logger and its sugared form.
type Logger struct {
	logger *zap.Logger
	Sugar  *zap.SugaredLogger
}

var (
	instance    *Logger
	once        sync.Once
	logFileName string
	logRootPath string
	serviceName string
	stdoutFile  *os.File

	// rotation state
	rotateTimer    *time.Timer
	currentLogPath string

	logLevel = LogLevelNull

	enableStacktrace = false
)

// SetLogRootPath sets the log root; path needs no trailing slash.
func SetLogRootPath(path string) {
	logRootPath = path
}

func InitFileLogConf(fileName string) {
	logFileName = fileName
}

func InitLogFileBySvrName(svrName string) {
	serviceName = svrName
}

// SetStacktrace enables stack traces on error-level entries.
func SetStacktrace(enable bool) {
	enableStacktrace = enable
}

// InitLogLevel overrides the configured default level.
func InitLogLevel(l LogLevel) {
	logLevel = l
}

// GetInstance GetInstance
func GetInstance() *Logger {
	once.Do(func() {
		instance = createLogger()
	})
	return instance
}

func createLogger() *Logger {
	ret := &Logger{}
	var logConf zap.Config

	cfg := config.GetInstance()
	currentEnv := common.GetCurrentEnvironment()

	if common.ShouldUseStderr() {
		// dev and container environments log to stderr
		logConf = zap.NewDevelopmentConfig()
		logConf.OutputPaths = []string{"stderr"}
		logConf.ErrorOutputPaths = []string{"stderr"}
		fmt.Printf("use log DevelopmentConfig for %s environment\n", currentEnv)
	} else if currentEnv == common.EnvProd {
		logConf = zap.NewProductionConfig()
		logConf.Encoding = "json"
		fmt.Println("use log ProductionConfig")

		// prod writes to hourly-rotated files
		createLogFile()

		logRootDir := cfg.LogConfig.LogRootDir
		if len(logRootPath) > 0 {
			logRootDir = logRootPath
		}

		var logPath string
		fileName := getCurrentLogFileName()

		if fileName != "" {
			if len(serviceName) > 0 {
				logPath = fmt.Sprintf("%s/%s/%s", logRootDir, serviceName, fileName)
			} else {
				logPath = fmt.Sprintf("%s/%s", logRootDir, fileName)
			}
			currentLogPath = logPath
			logConf.OutputPaths = []string{logPath}
			logConf.ErrorOutputPaths = []string{logPath}
		} else {
			logConf.OutputPaths = []string{"stderr"}
			logConf.ErrorOutputPaths = []string{"stderr"}
			fmt.Println("Production environment fallback to stderr due to file path error")
		}
	} else {
		logConf = zap.NewDevelopmentConfig()
		logConf.OutputPaths = []string{"stderr"}
		logConf.ErrorOutputPaths = []string{"stderr"}
		fmt.Printf("use log DevelopmentConfig for unknown environment: %s\n", currentEnv)
	}

	logConf.DisableStacktrace = !enableStacktrace

	if logLevel == LogLevelNull {
		// not set explicitly, load the default from config
		logLevel = LogLevel(cfg.LogConfig.LogLevel)
	}
	logConf.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel))

	var err error
	ret.logger, err = logConf.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Println("logConf.Build err:", err)
	}
	ret.Sugar = ret.logger.Sugar()
	return ret
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Debugf called with empty template, use Debug() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Debug(args...)
		}
		return
	}
	GetInstance().Sugar.Debugf(template, args...)
}

// Infof uses fmt.Sprintf to log a templated message.
func Infof(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Infof called with empty template, use Info() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Info(args...)
		}
		return
	}
	GetInstance().Sugar.Infof(template, args...)
}

// Printf uses fmt.Sprint to construct and log a message.
func Printf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Printf called with empty template, use Print() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Info(args...)
		}
		return
	}
	GetInstance().Sugar.Infof(template, args...)
}

// Warnf uses fmt.Sprintf to log a templated message.
func Warnf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Warnf called with empty template, use Warn() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Warn(args...)
		}
		return
	}
	GetInstance().Sugar.Warnf(template, args...)
}

// Errorf uses fmt.Sprintf to log a templated message.
func Errorf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Errorf called with empty template, use Error() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Error(args...)
		}
		return
	}
	GetInstance().Sugar.Errorf(template, args...)
}

func DPanicf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("DPanicf called with empty template, use DPanic() instead")
		if len(args) > 0 {
			GetInstance().Sugar.DPanic(args...)
		}
		return
	}
	GetInstance().Sugar.DPanicf(template, args...)
}

// Panicf uses fmt.Sprintf to log a templated message, then panics.
func Panicf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Panicf called with empty template, use Panic() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Panic(args...)
		}
		return
	}
	GetInstance().Sugar.Panicf(template, args...)
}

// Fatalf uses fmt.Sprintf to log a templated message, then calls os.Exit.
func Fatalf(template string, args ...interface{}) {
	if template == "" {
		GetInstance().Sugar.Warn("Fatalf called with empty template, use Fatal() instead")
		if len(args) > 0 {
			GetInstance().Sugar.Fatal(args...)
		}
		return
	}
	GetInstance().Sugar.Fatalf(template, args...)
}
