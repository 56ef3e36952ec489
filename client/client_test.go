package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/require"

	"employeedir/types"
)

type fakeQueue struct {
	sqsiface.SQSAPI
	sent []*sqs.SendMessageInput
}

func (q *fakeQueue) SendMessage(input *sqs.SendMessageInput) (*sqs.SendMessageOutput, error) {
	q.sent = append(q.sent, input)
	return &sqs.SendMessageOutput{}, nil
}

func TestClientSendMessage(t *testing.T) {
	require := require.New(t)
	queue := &fakeQueue{}
	c := New(queue, "queue-url")

	require.NoError(c.AddEmployee(types.Draft{Name: "Ann", Number: "1"}))
	require.NoError(c.ApplyFilter(2023))
	require.NoError(c.DeleteCurrent())
	require.Len(queue.sent, 3)

	first := queue.sent[0]
	require.Equal("queue-url", aws.StringValue(first.QueueUrl))
	require.Equal(messageGroupId, aws.StringValue(first.MessageGroupId))
	_, err := uuid.Parse(aws.StringValue(first.MessageDeduplicationId))
	require.NoError(err)
	require.NotEqual(aws.StringValue(first.MessageDeduplicationId), aws.StringValue(queue.sent[1].MessageDeduplicationId))

	var item types.Item
	require.NoError(json.Unmarshal([]byte(aws.StringValue(first.MessageBody)), &item))
	require.Equal(types.AddEmployee, item.Action)
	require.Equal("Ann", item.Employee.Name)

	require.NoError(json.Unmarshal([]byte(aws.StringValue(queue.sent[1].MessageBody)), &item))
	require.Equal(types.ApplyFilter, item.Action)
	require.Equal(2023, item.Year)
}

func TestReadLineFromFile(t *testing.T) {
	require := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	input := strings.NewReader(`x {"a": {"b": 1}} y {}`)

	line, err := readLineFromFile(ctx, input)
	require.NoError(err)
	require.Equal([]string{"x", `{"a":`, `{"b":`, `1}}`}, line)

	line, err = readLineFromFile(ctx, input)
	require.NoError(err)
	require.Equal([]string{"y", "{}"}, line)

	cancel()
	_, err = readLineFromFile(ctx, input)
	require.ErrorIs(err, context.Canceled)
}

type recordingSender struct {
	mu    *sync.Mutex
	items *[]string
	after func(count int)
}

func (s recordingSender) SendMessage(item *types.Item) error {
	s.mu.Lock()
	*s.items = append(*s.items, string(item.Action))
	count := len(*s.items)
	s.mu.Unlock()
	s.after(count)
	return nil
}

func TestClientsManager(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "clients.txt")
	err := os.WriteFile(path, []byte(`alice {"action":"AddEmployee","employee":{"name":"Ann Lee","number":"1"}}
bob {"action": "ListEmployees"}
bob {broken}
alice {"action":"Next"}
`), 0600)
	require.NoError(err)
	input, err := os.Open(path)
	require.NoError(err)
	defer input.Close()

	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())

	var (
		mu      sync.Mutex
		items   []string
		created int
		cm      *ClientsManager
	)
	newClient := func() (Sender, error) {
		created++
		return recordingSender{mu: &mu, items: &items, after: func(count int) {
			if count == 3 {
				cm.Cancel()
			}
		}}, nil
	}
	cm = newClientsManager(input, newClient, time.Minute, logger)

	require.NoError(cm.ListenClientActions())
	require.Equal([]string{"AddEmployee", "ListEmployees", "Next"}, items)
	require.Equal(2, created)
	require.Len(cm.clients, 2)

	cm.idleAfter = 0
	cm.removeUnusedClients()
	require.Empty(cm.clients)
}

func TestProcessClientActionErrors(t *testing.T) {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	cm := newClientsManager(nil, func() (Sender, error) { return nil, nil }, time.Minute, logger)

	require.Error(t, cm.processClientAction("alice"))
	require.Error(t, cm.processClientAction("alice {not json}"))
	require.Error(t, cm.processClientAction("alice null"))
}
