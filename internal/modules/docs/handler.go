package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
}

// Index serves the static API documentation page.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `
  <style>
    table, th, td {
      border: 1px solid black;
      border-collapse: collapse;
    }
    th, td {
      padding: 10px;
    }
    th {
      text-align: left;
    }
  </style>

  <h1>Equipment Rental API</h1>
  <hr>

  <h2>Endpoints:</h2>

  <table>
    <tr>
      <th>Endpoint</th>
      <th>Purpose</th>
    </tr>
    <tr>
      <td>/</td>
      <td>Endpoint for API Docs</td>
    </tr>
    <tr>
      <td>/Customer</td>
      <td>Endpoint for customer data</td>
    </tr>
    <tr>
      <td>/Equipment</td>
      <td>Endpoint for equipment data</td>
    </tr>
    <tr>
      <td>/Inventory</td>
      <td>Endpoint for inventory data</td>
    </tr>
    <tr>
      <td>/Rental</td>
      <td>Endpoint for rental data</td>
    </tr>
  </table>

  <h2>Available Requests:</h2>

  <table>
    <tr>
      <th>Endpoint</th>
      <th>Request Type</th>
      <th>Body of Request</th>
      <th>Response</th>
    </tr>

    <tr>
      <td>/</td>
      <td>GET</td>
      <td>N/A</td>
      <td>The API documentation (this)</td>
    </tr>

    <tr>
      <td>/Customer</td>
      <td>GET</td>
      <td>N/A</td>
      <td>A list of the customers in 'data' and a 'message'.</td>
    </tr>
    <tr>
      <td>/Customer/{id}</td>
      <td>GET</td>
      <td>N/A</td>
      <td>The details of the specified customer in 'data' and 'message'.</td>
    </tr>
    <tr>
      <td>/Customer</td>
      <td>POST</td>
      <td>
          {<br>
            "f_name": "John",<br>
            "l_name": "Dewey",<br>
            "address": "123 South St.",<br>
            "city": "Somewhere",<br>
            "state": "MI",<br>
            "phone": "123-456-7890"<br>
          }
      </td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Customer/{id}</td>
      <td>PUT</td>
      <td>
          {<br>
            "f_name": "John",<br>
            "l_name": "Dewey",<br>
            "address": "444 North St.",<br>
            "city": "Somewhere",<br>
            "state": "MI",<br>
            "phone": "321-456-7890"<br>
          }
      </td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Customer/{id}</td>
      <td>DELETE</td>
      <td>N/A</td>
      <td>A 'message'.</td>
    </tr>

    <tr>
      <td>/Equipment</td>
      <td>GET</td>
      <td>N/A</td>
      <td>A list of the equipment in 'data' and a 'message'.</td>
    </tr>
    <tr>
      <td>/Equipment/{id}</td>
      <td>GET</td>
      <td>N/A</td>
      <td>The details of the specified equipment in 'data' and 'message'.</td>
    </tr>
    <tr>
      <td>/Equipment</td>
      <td>POST</td>
      <td>
        {<br>
          "name": "Phillips Screwdriver",<br>
          "price": 1.00,<br>
          "category": "Hand Tools",<br>
          "description": "A 6-inch, red, Phillips screw driver."<br>
        }
      </td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Equipment/{id}</td>
      <td>PUT</td>
      <td>
        {<br>
          "name": "Phillips Screwdriver",<br>
          "price": 1.50,<br>
          "category": "Hand Tools",<br>
          "description": "A 6-inch, orange, Phillips screw driver."<br>
        }
      </td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Equipment/{id}</td>
      <td>DELETE</td>
      <td>N/A</td>
      <td>A 'message'.</td>
    </tr>

    <tr>
      <td>/Inventory</td>
      <td>GET</td>
      <td>N/A</td>
      <td>A list of the items in the inventory in 'data' and a 'message'.</td>
    </tr>
    <tr>
      <td>/Inventory/{equipment_id}</td>
      <td>GET</td>
      <td>N/A</td>
      <td>The details of the specified item in the inventory.</td>
    </tr>
    <tr>
      <td>/Inventory</td>
      <td>POST</td>
      <td>
        {<br>
          "equipment_id": 1,<br>
          "total": 50,<br>
          "rented": 0<br>
        }
      </td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Inventory/{equipment_id}</td>
      <td>PUT</td>
      <td>
        {<br>
          "equipment_id": 1,<br>
          "total": 100,<br>
          "rented": 0<br>
        }
      </td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Inventory/{equipment_id}</td>
      <td>DELETE</td>
      <td>N/A</td>
      <td>A 'message'.</td>
    </tr>

    <tr>
      <td>/Rental</td>
      <td>GET</td>
      <td>N/A</td>
      <td>A list of the rentals in the system in 'data' and a 'message'.</td>
    </tr>
    <tr>
      <td>/Rental/{id}</td>
      <td>GET</td>
      <td>N/A</td>
      <td>The details of the specified rental in the inventory.</td>
    </tr>
    <tr>
      <td>/Rental</td>
      <td>POST</td>
      <td>
        {<br>
          "customer_id": 1,<br>
          "equipment_id": 2,<br>
          "quantity": 1,<br>
          "start": "2024-07-01",<br>
          "end": "2024-07-03"<br>
        }
      </td>
      <td>A 'message' including the rental cost.</td>
    </tr>
    <tr>
      <td>/Rental/{id}</td>
      <td>PUT</td>
      <td>
        {<br>
          "customer_id": 1,<br>
          "equipment_id": 2,<br>
          "quantity": 1,<br>
          "start": "2024-07-01",<br>
          "end": "2024-07-02"<br>
        }</td>
      <td>A 'message'.</td>
    </tr>
    <tr>
      <td>/Rental/{id}</td>
      <td>DELETE</td>
      <td>N/A</td>
      <td>A 'message'.</td>
    </tr>
  </table>
`
