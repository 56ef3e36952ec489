package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"employeedir/config"
	"employeedir/directory"
	"employeedir/session"
	"employeedir/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/inconshreveable/log15"
)

type Server struct {
	session    *session.Session
	filterYear int
	queue      sqsiface.SQSAPI
	queueUrl   string
	waitTime   int64
	logFile    io.Writer
	ctx        context.Context
	Cancel     context.CancelFunc
	logger     log15.Logger
	dataMux    sync.Mutex
	logsMux    sync.Mutex
}

func NewServer(conf *config.Config) (*Server, error) {
	sess := awssession.Must(awssession.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("Cannot assign session with credentials\n%s", err)
	}

	logFile, err := os.OpenFile(conf.LogFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	logger := log15.New("service", "server")
	logger.SetHandler(log15.LvlFilterHandler(logLevel(conf.LogLevel), log15.StdoutHandler))

	return New(sqs.New(sess), conf, logFile, logger), nil
}

// New builds a server around an existing queue client. Every processed
// command is appended as one line to logOut.
func New(queue sqsiface.SQSAPI, conf *config.Config, logOut io.Writer, logger log15.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		session:    session.New(directory.New()),
		filterYear: conf.Directory.FilterYear,
		queue:      queue,
		logFile:    logOut,
		ctx:        ctx,
		Cancel:     cancel,
		queueUrl:   conf.Aws.QueueUrl,
		logger:     logger,
		waitTime:   conf.ServerWaitTimeSeconds,
	}
}

func logLevel(name string) log15.Lvl {
	lvl, err := log15.LvlFromString(name)
	if err != nil {
		return log15.LvlDebug
	}
	return lvl
}

func (s *Server) StartServer() error {
	s.logger.Debug("Listening queue!", "url", s.queueUrl)
	messagesChan := make(chan *sqs.Message)
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.listenMessages(messagesChan)
	}()
	return s.processMessages(messagesChan, errChan)
}

func (s *Server) listenMessages(messagesChan chan *sqs.Message) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		default:
			msgResult, err := s.queue.ReceiveMessageWithContext(s.ctx, &sqs.ReceiveMessageInput{
				AttributeNames: []*string{
					aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
				},
				MessageAttributeNames: []*string{
					aws.String(sqs.QueueAttributeNameAll),
				},
				QueueUrl:            &s.queueUrl,
				MaxNumberOfMessages: aws.Int64(10),
				WaitTimeSeconds:     aws.Int64(s.waitTime),
			})
			if err != nil {
				if s.ctx.Err() != nil {
					return nil
				}
				s.logger.Error("Error while receiving messages", "error", err.Error())
				return err
			}
			for _, message := range msgResult.Messages {
				select {
				case messagesChan <- message:
				case <-s.ctx.Done():
					return nil
				}
			}
		}
	}
}

// processMessages handles messages one at a time so commands reach the
// session in queue order.
func (s *Server) processMessages(messagesChan chan *sqs.Message, errChan chan error) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case err := <-errChan:
			return err
		case message := <-messagesChan:
			if message == nil || message.Body == nil {
				continue
			}
			s.handleMessage(*message.Body)
			_, err := s.queue.DeleteMessageWithContext(s.ctx, &sqs.DeleteMessageInput{
				QueueUrl:      &s.queueUrl,
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				s.logger.Error("Error while deleting message", "error", err)
				return err
			}
		}
	}
}

func (s *Server) handleMessage(body string) {
	var item *types.Item
	err := json.Unmarshal([]byte(body), &item)
	if err != nil {
		s.logger.Error("Cannot unmarhsal message", "error", err.Error())
		return
	}
	if item == nil {
		return
	}

	log := s.processItem(item)
	s.logger.Debug("Processed item", "action", item.Action, "result", log)

	s.logsMux.Lock()
	defer s.logsMux.Unlock()
	if _, err := fmt.Fprintf(s.logFile, "%s || %s\n", time.Now().Format(time.RFC822), log); err != nil {
		s.logger.Error("Cannot write log file", "error", err)
	}
}
