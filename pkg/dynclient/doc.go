/*
Package dynclient builds dynect.Client values.

	client, err := dynclient.New(&dynect.Config{
		Credentials: dynect.Credentials{
			CustomerName: "acme",
			UserName:     "api-user",
			Password:     os.Getenv("DYNECT_PASSWORD"),
		},
	})
	if err != nil {
		return err
	}

	if !client.Login(ctx) {
		return fmt.Errorf("login failed: %s", client.LastResult())
	}
	defer client.Logout(ctx)

An empty APIEndpoint selects https://api2.dynect.net/REST.
*/
package dynclient
