//go:build linux && amd64 && !noattr
// +build linux,amd64,!noattr

package log

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/config"
)

var lastLogFileFullPath string
var oldMask int
var currentTimer *time.Timer

func umask(mask int) int {
	oldMask = syscall.Umask(mask)
	return oldMask
}

func getCurrentLogFileName() string {
	fileName := logFileName
	if len(serviceName) > 0 {
		fileName = fmt.Sprintf("%s-log", serviceName)
	}

	// log files are split hourly
	n := time.Now()
	return fmt.Sprintf("%s_%s", fileName, n.Format("2006-01-02_15"))
}

func createLogFile() {
	if len(logFileName) <= 0 && len(serviceName) <= 0 {
		fmt.Println("createLogFile len(logFileName serviceName) <= 0")
		return
	}

	var fullLogPath string
	logRootDir := config.GetInstance().LogConfig.LogRootDir
	if len(logRootPath) > 0 {
		logRootDir = logRootPath
	}
	if len(serviceName) > 0 {
		logRootPath := fmt.Sprintf("%s/%s/", logRootDir, serviceName)
		if os.MkdirAll(logRootPath, 0777) == nil {
			fullLogPath = fmt.Sprintf("%s%s", logRootPath, getCurrentLogFileName())
		}
	} else {
		if os.MkdirAll(logRootDir, 0777) == nil {
			fullLogPath = fmt.Sprintf("%s/%s", logRootDir, getCurrentLogFileName())
		}
	}

	if fullLogPath == lastLogFileFullPath && stdoutFile != nil {
		// same file and a live handle, only the timer needs resetting
		scheduleNextRotation()
		return
	}

	// created files must keep mode 0666 regardless of the process umask
	oldMask := umask(0)
	file, err := os.OpenFile(fullLogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if stdoutFile != nil {
		toCloseFile := stdoutFile
		stdoutFile = nil
		toCloseFileFullPath := lastLogFileFullPath
		time.AfterFunc(2*time.Second, func() {
			if toCloseFile != nil {
				lastLogFileInfo, err := toCloseFile.Stat()
				if err != nil {
					fmt.Println("Stat:", err)
				} else {
					// drop the previous file if it stayed empty
					if lastLogFileInfo.Size() <= 0 {
						os.Remove(toCloseFileFullPath)
					}
				}
				err = toCloseFile.Close()
				if err != nil {
					fmt.Println("CloseFile:", err)
				}
			}
		})
	}
	umask(oldMask)
	stdoutFile = file
	lastLogFileFullPath = fullLogPath
	if err != nil {
		fmt.Println("OpenFile:", err)
		return
	}

	if currentLogPath != "" {
		notifyLoggerRotation(fullLogPath)
	} else {
		// first creation, just record the path
		currentLogPath = fullLogPath
	}

	scheduleNextRotation()
}

// scheduleNextRotation arms the next hourly rotation, replacing any pending timer.
func scheduleNextRotation() {
	if currentTimer != nil {
		currentTimer.Stop()
	}

	now := time.Now()
	tHLatter := now.Add(1 * time.Hour)
	tHLatter = time.Date(tHLatter.Year(), tHLatter.Month(), tHLatter.Day(), tHLatter.Hour(), 0, 0, 0, tHLatter.Location())
	remain := time.Until(tHLatter)

	currentTimer = time.AfterFunc(remain, createLogFile)
	fmt.Printf("Next log rotation scheduled in %v (at %s)\n", remain, tHLatter.Format("15:04:05"))
}

// notifyLoggerRotation switches the logger to a new log file.
func notifyLoggerRotation(newFilePath string) {
	if currentLogPath == newFilePath {
		return
	}

	// flush pending entries before switching
	if instance != nil && instance.logger != nil {
		instance.logger.Sync()
	}

	currentLogPath = newFilePath

	cfg := config.GetInstance()
	if cfg.Environment == "prod" {
		// only prod rotates files; dev and container use stderr
		once = sync.Once{}
		instance = nil
		GetInstance()
		fmt.Printf("Log rotated to: %s\n", newFilePath)
	}
}
