// Command ews-demo runs a small task workflow against an EWS endpoint:
// create a task, fetch it back, update its due date, and delete it.
//
// Configuration comes from the environment (or a .env file):
//
//	EWS_ENDPOINT  https://host/EWS/Exchange.asmx
//	EWS_DOMAIN    NT domain, empty for Exchange Online style logins
//	EWS_USERNAME
//	EWS_PASSWORD
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ewsclient/go-ews"
)

func main() {
	// A missing .env file is fine, the variables may come from the shell.
	_ = godotenv.Load()

	endpoint := os.Getenv("EWS_ENDPOINT")
	if endpoint == "" {
		log.Fatal("EWS_ENDPOINT is not set")
	}

	client, err := ews.NewNTLMClient(endpoint,
		os.Getenv("EWS_DOMAIN"),
		os.Getenv("EWS_USERNAME"),
		os.Getenv("EWS_PASSWORD"))
	if err != nil {
		log.Fatalf("creating client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	task := ews.NewTask()
	task.SetSubject("Water the plants")
	task.SetBody(ews.BodyTypeText, "Don't forget the ficus.")
	task.SetDueDate(time.Now().AddDate(0, 0, 3))

	id, err := client.CreateTask(ctx, task)
	if err != nil {
		log.Fatalf("creating task: %v", err)
	}
	fmt.Printf("created task %v\n", id.ID)

	fetched, err := client.GetTask(ctx, id, ews.BaseShapeAllProperties)
	if err != nil {
		log.Fatalf("fetching task: %v", err)
	}
	fmt.Printf("subject: %v, status: %v\n", fetched.Subject(), fetched.Status())

	id, err = client.UpdateItem(ctx, fetched.ID(), ews.AutoResolve,
		ews.SetField("task:DueDate", time.Now().AddDate(0, 0, 7).UTC().Format("2006-01-02T15:04:05Z")))
	if err != nil {
		log.Fatalf("updating task: %v", err)
	}
	fmt.Printf("due date moved, new change key %v\n", id.ChangeKey)

	ids, err := client.FindItemIDs(ctx, ews.NewDistinguishedFolderID(ews.FolderTasks),
		ews.Contains("task:Subject", "plants"))
	if err != nil {
		log.Fatalf("listing tasks: %v", err)
	}
	fmt.Printf("found %d matching task(s)\n", len(ids))

	if err := client.DeleteTask(ctx, id, ews.MoveToDeletedItems, ews.AllOccurrences); err != nil {
		if ews.IsResponseCode(err, ews.ErrorItemNotFound) {
			log.Printf("task already gone")
		} else {
			log.Fatalf("deleting task: %v", err)
		}
	}
	fmt.Println("done")
}
