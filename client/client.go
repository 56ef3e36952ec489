package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"employeedir/config"
	"employeedir/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
)

const messageGroupId = "employees"

type Client struct {
	queue    sqsiface.SQSAPI
	queueUrl string
}

func NewClient(conf *config.Config) (*Client, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("Cannot assign session with credentials\n%s", err)
	}

	return New(sqs.New(sess), conf.Aws.QueueUrl), nil
}

func New(queue sqsiface.SQSAPI, queueUrl string) *Client {
	return &Client{queue: queue, queueUrl: queueUrl}
}

func (c *Client) SendMessage(item *types.Item) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	req, err := json.Marshal(item)
	if err != nil {
		return err
	}
	_, err = c.queue.SendMessage(&sqs.SendMessageInput{
		DelaySeconds:           aws.Int64(0),
		MessageBody:            aws.String(string(req)),
		QueueUrl:               &c.queueUrl,
		MessageGroupId:         aws.String(messageGroupId),
		MessageDeduplicationId: aws.String(id.String()),
	})
	return err
}

func (c *Client) AddEmployee(employee types.Draft) error {
	return c.SendMessage(&types.Item{Action: types.AddEmployee, Employee: &employee})
}

func (c *Client) ModifyEmployee(employee types.Draft) error {
	return c.SendMessage(&types.Item{Action: types.ModifyEmployee, Employee: &employee})
}

func (c *Client) RemoveEmployee(employee types.Draft) error {
	return c.SendMessage(&types.Item{Action: types.RemoveEmployee, Employee: &employee})
}

func (c *Client) GetPosition(employee types.Draft) error {
	return c.SendMessage(&types.Item{Action: types.GetPosition, Employee: &employee})
}

func (c *Client) ListEmployees() error {
	return c.SendMessage(&types.Item{Action: types.ListEmployees})
}

func (c *Client) Next() error {
	return c.SendMessage(&types.Item{Action: types.Next})
}

func (c *Client) Back() error {
	return c.SendMessage(&types.Item{Action: types.Back})
}

func (c *Client) Current() error {
	return c.SendMessage(&types.Item{Action: types.Current})
}

func (c *Client) DeleteCurrent() error {
	return c.SendMessage(&types.Item{Action: types.DeleteCurrent})
}

// ApplyFilter asks for employees hired in year. Zero uses the server default.
func (c *Client) ApplyFilter(year int) error {
	return c.SendMessage(&types.Item{Action: types.ApplyFilter, Year: year})
}

func (c *Client) ClearFilter() error {
	return c.SendMessage(&types.Item{Action: types.ClearFilter})
}

// Sender is what ClientsManager needs from a client.
type Sender interface {
	SendMessage(item *types.Item) error
}

type ClientsManager struct {
	clients   map[string]*ClientUsage
	input     *os.File
	newClient func() (Sender, error)
	idleAfter time.Duration
	logger    log15.Logger
	mux       sync.Mutex
	ctx       context.Context
	Cancel    context.CancelFunc
}

type ClientUsage struct {
	client   Sender
	lastUsed time.Time
}

func NewClientsManager(cfg *config.Config, logger log15.Logger) (manager *ClientsManager, err error) {
	input := os.Stdin
	if len(cfg.ClientsInputPath) != 0 {
		input, err = os.Open(cfg.ClientsInputPath)
		if err != nil {
			return nil, err
		}
	}
	newClient := func() (Sender, error) {
		return NewClient(cfg)
	}
	return newClientsManager(input, newClient, time.Duration(cfg.ClientIdleSeconds)*time.Second, logger), nil
}

func newClientsManager(input *os.File, newClient func() (Sender, error), idleAfter time.Duration, logger log15.Logger) *ClientsManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &ClientsManager{
		clients:   make(map[string]*ClientUsage),
		input:     input,
		newClient: newClient,
		idleAfter: idleAfter,
		logger:    logger,
		ctx:       ctx,
		Cancel:    cancel,
	}
}

func (cm *ClientsManager) ListenClientActions() error {
	if cm.input == os.Stdin {
		fmt.Println("Write clients tasks here in format <clientId> <item>")
	}

	ticker := setInterval(cm.removeUnusedClients, cm.idleAfter)
	defer ticker.Stop()

	lines, errChan := SubscribeToFileInput(cm.ctx, cm.input)

	for {
		select {
		case <-cm.ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errChan:
					return err
				default:
					return nil
				}
			}
			if len(line) != 0 {
				if err := cm.processClientAction(line); err != nil {
					cm.logger.Error("Cannot process client action", "line", line, "error", err)
				}
			}
		case err := <-errChan:
			if err != nil {
				return err
			}
		}
	}
}

func (cm *ClientsManager) removeUnusedClients() {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	for clientId, clientUsage := range cm.clients {
		if time.Since(clientUsage.lastUsed) > cm.idleAfter {
			cm.logger.Debug("Removing idle client", "client", clientId)
			delete(cm.clients, clientId)
		}
	}

}

func (cm *ClientsManager) processClientAction(inputStr string) error {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	splittedInput := strings.SplitN(strings.TrimSpace(inputStr), " ", 2)
	if len(splittedInput) != 2 {
		return fmt.Errorf("Wrong input string. Should be in format <clientId> <item>")
	}

	clientId := splittedInput[0]
	itemStr := splittedInput[1]

	var item *types.Item
	err := json.Unmarshal([]byte(itemStr), &item)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("Empty item for client %s", clientId)
	}
	if client, ok := cm.clients[clientId]; ok {
		client.lastUsed = time.Now()
		return client.client.SendMessage(item)
	}
	client, err := cm.newClient()
	if err != nil {
		return err
	}
	cm.clients[clientId] = &ClientUsage{client, time.Now()}
	return client.SendMessage(item)
}
