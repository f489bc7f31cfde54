package logger_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/relloyd/mtgpipe/logger"
)

var _ = Describe("Logger", func() {
	var (
		l         *logger.LoggerImpl
		logOutput *bytes.Buffer
		actual    map[string]interface{}
	)

	BeforeEach(func() {
		l = logger.NewLogger("test-service", "debug", true)
		logOutput = bytes.NewBufferString("")
		l.SetOutput(logOutput)
		actual = nil
	})

	It("Should have `test-service` as service name", func() {
		l.Info("Testing")
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["service"]).To(Equal("test-service"))
	})

	It("Should carry the run id on every entry", func() {
		l.Info("Testing")
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["runId"]).To(Equal(l.RunId))
		Expect(l.RunId).NotTo(BeEmpty())
	})

	It("Should have info as log level", func() {
		l.Info("Testing")
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["level"]).To(Equal("info"))
	})

	It("Should have warn as log level", func() {
		l.Warn("Testing")
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["level"]).To(Equal("warning"))
	})

	It("Should have error as log level with a stack trace", func() {
		l.Error("Testing")
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["level"]).To(Equal("error"))
		Expect(actual["stackTrace"]).ToNot(BeNil())
	})

	It("Should have `Testing` as msg", func() {
		l.Info("Testing")
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["msg"]).To(Equal("Testing"))
	})

	It("Should suppress debug output at info level", func() {
		quiet := logger.NewLogger("test-service", "info", false)
		quiet.SetOutput(logOutput)
		quiet.Debug("hidden")
		Expect(logOutput.Len()).To(Equal(0))
	})

	It("Should panic via Panic", func() {
		Expect(func() { l.Panic("boom") }).To(Panic())
	})
})
