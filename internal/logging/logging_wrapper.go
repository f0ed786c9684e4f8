package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Middleware gives every request a fresh LogData and logs it once the handler returns.
// Responses with status >= 500 are logged at error level.
func Middleware(loggingName string, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Debugf("Handler.%v.Start", loggingName)

			logData := NewLogData(log)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			endTimer := logData.AddTiming("duration")
			next.ServeHTTP(recorder, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			logData.AddData("status", recorder.status)
			if recorder.status >= http.StatusInternalServerError {
				logData.Log().Errorf("Handler.%v.Error", loggingName)
				return
			}

			logData.Log().Infof("Handler.%v.Complete", loggingName)
		})
	}
}
