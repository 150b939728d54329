package goroutine

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/campus-lostfound/internal/logger"
)

// SafeGo запускает fn в отдельной горутине. Panic логируется с именем задачи и не роняет процесс.
func SafeGo(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}

// Recover перехватывает panic. Вызывать только через defer.
func Recover(name string) {
	if r := recover(); r != nil {
		logger.Log.WithFields(logrus.Fields{
			"task":  name,
			"panic": r,
			"stack": string(debug.Stack()),
		}).Error("goroutine: panic перехвачен")
	}
}
